package handler

import (
	"fmt"

	"linha-viva/internal/service"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// ExportInventory downloads stock and requests as a workbook
// GET /api/v1/reports/inventory.xlsx
func (h *ReportHandler) ExportInventory(c *fiber.Ctx) error {
	data, name, err := h.service.InventoryWorkbook()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(data)
}
