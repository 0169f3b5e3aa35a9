package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Inventory *InventoryHandler
	Sync      *SyncHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Auth      *AuthHandler
}

// SetupRoutes mounts the /api/v1 routes. requireAdmin guards everything
// outside the field form and the sync indicator.
func SetupRoutes(app *fiber.App, h Handlers, requireAdmin fiber.Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Get("/vehicles", h.Inventory.GetVehicles)
	api.Get("/inventory", h.Inventory.GetInventory)
	api.Post("/requests", h.Inventory.CreateRequest)
	api.Get("/sync/status", h.Sync.GetStatus)
	api.Post("/sync/refresh", h.Sync.Refresh)
	api.Post("/auth/login", h.Auth.Login)

	// ============ ADMIN ROUTES ============
	admin := api.Group("", requireAdmin)

	admin.Get("/auth/session", h.Auth.Session)
	admin.Post("/auth/logout", h.Auth.Logout)

	admin.Post("/inventory", h.Inventory.CreateItem)
	admin.Get("/transactions", h.Inventory.GetTransactions)
	admin.Post("/transactions", h.Inventory.CreateTransaction)

	admin.Get("/requests", h.Inventory.GetRequests)
	admin.Patch("/requests/:id/status", h.Inventory.UpdateRequestStatus)

	admin.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
	admin.Get("/dashboard/stock-movement", h.Dashboard.GetStockMovement)
	admin.Get("/dashboard/critical", h.Dashboard.GetCriticalItems)

	admin.Get("/settings/endpoint", h.Sync.GetEndpoint)
	admin.Put("/settings/endpoint", h.Sync.UpdateEndpoint)

	admin.Get("/reports/inventory.xlsx", h.Report.ExportInventory)
}
