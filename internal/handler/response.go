package handler

import (
	"errors"

	"linha-viva/internal/middleware"
	"linha-viva/internal/service"

	"github.com/gofiber/fiber/v2"
)

// getActor returns the authenticated actor, or "system" on public routes.
func getActor(c *fiber.Ctx) string {
	if actor, ok := c.Locals(middleware.ActorKey).(string); ok && actor != "" {
		return actor
	}
	return "system"
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, service.ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateItem),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrRefreshInProgress):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrSessionExpired):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// mutated answers a local mutation. The change is committed even when some
// of the remote writes failed; synced tells the client which case it is.
func mutated(c *fiber.Ctx, svc service.InventoryService, status int, message string, data any, err error) error {
	body := fiber.Map{"message": message, "data": data, "synced": true}
	if pe, ok := service.SyncOnly(err); ok {
		body["synced"] = false
		body["syncErrors"] = pe.Messages()
	} else if err != nil {
		return fail(c, err)
	}
	body["sync"] = svc.SyncStatus()
	return c.Status(status).JSON(body)
}
