package handler

import (
	"strconv"
	"strings"

	"linha-viva/internal/model"
	"linha-viva/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetInventory lists materials.
// Query params: search, region, available (bool)
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	filter := service.InventoryFilter{Search: c.Query("search")}

	region, ok := regionQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}
	filter.Region = region
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid available flag"})
		}
		filter.Available = available
	}

	items, err := h.service.ListInventory(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": items, "sync": h.service.SyncStatus()})
}

// CreateItem registers a new material
// POST /api/v1/inventory
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in service.NewItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.AddItem(c.UserContext(), in, getActor(c))
	return mutated(c, h.service, 201, "Material created", item, err)
}

// CreateTransaction records a stock movement
// POST /api/v1/transactions
func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var in service.TransactionInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.service.AddTransaction(c.UserContext(), in, getActor(c))
	return mutated(c, h.service, 201, "Transaction recorded", tx, err)
}

// GetTransactions returns the local movement log, newest first.
// Query params: limit (default 100, 0 for all)
func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit < 0 {
		limit = 100
	}

	txs, err := h.service.ListTransactions(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(txs)
}

// CreateRequest opens a material request from the field form
// POST /api/v1/requests
func (h *InventoryHandler) CreateRequest(c *fiber.Ctx) error {
	var in service.RequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	req, err := h.service.AddRequest(c.UserContext(), in)
	return mutated(c, h.service, 201, "Request created", req, err)
}

// GetRequests lists requests, newest first.
// Query params: status (pending|served)
func (h *InventoryHandler) GetRequests(c *fiber.Ctx) error {
	status := model.RequestStatus(strings.ToLower(c.Query("status")))
	if status != "" && status != model.StatusPending && status != model.StatusServed {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	requests, err := h.service.ListRequests(status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(requests)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRequestStatus marks a request served (moving stock) or pending
// PATCH /api/v1/requests/:id/status
func (h *InventoryHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	var body UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	status := model.RequestStatus(strings.ToLower(strings.TrimSpace(body.Status)))
	req, err := h.service.UpdateRequestStatus(c.UserContext(), c.Params("id"), status, getActor(c))
	return mutated(c, h.service, 200, "Request updated", req, err)
}

// GetVehicles returns the fleet list for the request form.
func (h *InventoryHandler) GetVehicles(c *fiber.Ctx) error {
	return c.JSON(model.Vehicles)
}
