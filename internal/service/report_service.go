package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"linha-viva/internal/model"
	"linha-viva/internal/repository"

	"github.com/xuri/excelize/v2"
)

const (
	SheetInventory = "Estoque"
	SheetRequests  = "Solicitações"
)

type ReportService interface {
	// InventoryWorkbook renders stock and requests as an XLSX file.
	InventoryWorkbook() ([]byte, string, error)
}

type reportService struct {
	itemRepo    repository.InventoryRepository
	requestRepo repository.RequestRepository
	loc         *time.Location
	now         func() time.Time
}

func NewReportService(itemRepo repository.InventoryRepository, requestRepo repository.RequestRepository, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{itemRepo: itemRepo, requestRepo: requestRepo, loc: loc, now: time.Now}
}

func (s *reportService) InventoryWorkbook() ([]byte, string, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, "", err
	}
	requests, err := s.requestRepo.FindAll("")
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// 1) Estoque
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, SheetInventory); err != nil {
		return nil, "", err
	}
	header := []interface{}{"ID", "Material", "Saldo Itabaiana", "Saldo Dores"}
	if err := f.SetSheetRow(SheetInventory, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("inventory header: %w", err)
	}
	for i, it := range items {
		row := []interface{}{it.ID, it.Name, it.BalanceItabaiana, it.BalanceDores}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(SheetInventory, cell, &row); err != nil {
			return nil, "", fmt.Errorf("inventory row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(SheetInventory, "B", "B", 60)

	// 2) Solicitações
	if _, err := f.NewSheet(SheetRequests); err != nil {
		return nil, "", err
	}
	header = []interface{}{"ID", "Data", "VTR", "Região", "Solicitante", "Status", "Itens"}
	if err := f.SetSheetRow(SheetRequests, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("requests header: %w", err)
	}
	for i, r := range requests {
		lines := make([]string, 0, len(r.Items))
		for _, it := range r.Items {
			lines = append(lines, fmt.Sprintf("%s(%d)", it.ItemName, it.Quantity))
		}
		row := []interface{}{
			r.ID,
			time.UnixMilli(r.Timestamp).In(s.loc).Format("02/01/2006 15:04:05"),
			r.Vtr,
			string(r.Region),
			r.RequesterName,
			statusLabel(r.Status),
			strings.Join(lines, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(SheetRequests, cell, &row); err != nil {
			return nil, "", fmt.Errorf("requests row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(SheetRequests, "G", "G", 80)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("LinhaViva_Relatorio_%s.xlsx", s.now().In(s.loc).Format("02-01-2006"))
	return buf.Bytes(), name, nil
}

func statusLabel(st model.RequestStatus) string {
	if st == model.StatusServed {
		return "Atendido"
	}
	return "Pendente"
}
