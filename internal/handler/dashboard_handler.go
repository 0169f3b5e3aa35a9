package handler

import (
	"strconv"

	"linha-viva/internal/model"
	"linha-viva/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxMovementDays = 90

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// regionQuery reads an optional ?region= filter. ok is false when the value
// is not a known warehouse.
func regionQuery(c *fiber.Ctx) (region model.Region, ok bool) {
	raw := c.Query("region")
	if raw == "" {
		return "", true
	}
	region, err := model.ParseRegion(raw)
	return region, err == nil
}

// GetStockMovement returns daily in/out totals for the chart
// Query params: days (default 7, max 90), region
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	if days > maxMovementDays {
		days = maxMovementDays
	}
	region, ok := regionQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}

	data, err := h.service.GetStockMovement(days, region)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"region": region,
		"data":   data,
	})
}

// GetDashboardStats returns item, critical-stock, request and sync counters
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(stats)
}

// GetCriticalItems lists materials at or below the critical threshold
// Query params: region
func (h *DashboardHandler) GetCriticalItems(c *fiber.Ctx) error {
	region, ok := regionQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid region"})
	}

	items, err := h.service.GetCriticalItems(region)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch critical items"})
	}
	return c.JSON(fiber.Map{"threshold": model.CriticalThreshold, "data": items})
}
