package handler

import (
	"errors"

	"linha-viva/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SyncHandler struct {
	service service.InventoryService
}

func NewSyncHandler(s service.InventoryService) *SyncHandler {
	return &SyncHandler{service: s}
}

func (h *SyncHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.SyncStatus())
}

// Refresh pulls the sheet now (the retry button).
// POST /api/v1/sync/refresh
func (h *SyncHandler) Refresh(c *fiber.Ctx) error {
	err := h.service.Refresh(c.UserContext())
	switch {
	case errors.Is(err, service.ErrRefreshInProgress):
		return c.Status(409).JSON(fiber.Map{"error": err.Error(), "sync": h.service.SyncStatus()})
	case err != nil:
		return c.Status(502).JSON(fiber.Map{"error": err.Error(), "sync": h.service.SyncStatus()})
	}
	return c.JSON(fiber.Map{"message": "Refreshed", "sync": h.service.SyncStatus()})
}

type EndpointRequest struct {
	URL string `json:"url"`
}

func (h *SyncHandler) GetEndpoint(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"url": h.service.Endpoint(c.UserContext())})
}

// UpdateEndpoint points the service at another sheet script. An empty url
// restores the configured default.
// PUT /api/v1/settings/endpoint
func (h *SyncHandler) UpdateEndpoint(c *fiber.Ctx) error {
	var body EndpointRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.SetEndpoint(c.UserContext(), body.URL); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Endpoint updated", "url": h.service.Endpoint(c.UserContext())})
}
