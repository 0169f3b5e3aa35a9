package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"linha-viva/internal/model"
	"linha-viva/internal/repository"

	"github.com/xuri/excelize/v2"
)

func TestReportService_InventoryWorkbook(t *testing.T) {
	db := newTestDB(t)
	items := repository.NewInventoryRepo(db)
	requests := repository.NewRequestRepo(db)

	if err := items.ReplaceAll([]model.InventoryItem{
		{ID: "90394", Name: "ABRACADEIRA CINTA", BalanceItabaiana: 50, BalanceDores: 4},
		{ID: "92453", Name: "ALÇA ESTRIBO", BalanceItabaiana: 1},
	}); err != nil {
		t.Fatalf("seed items: %v", err)
	}
	req := model.MaterialRequest{
		ID: "ABC123XYZ", Vtr: "1645", Region: model.RegionDores, RequesterName: "ANA",
		Status: model.StatusServed, Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC).UnixMilli(),
		Items: []model.RequestedItem{
			{ItemID: "90394", ItemName: "ABRACADEIRA CINTA", Quantity: 2},
			{ItemID: "92453", ItemName: "ALÇA ESTRIBO", Quantity: 1},
		},
	}
	if err := requests.Create(nil, &req); err != nil {
		t.Fatalf("seed request: %v", err)
	}

	svc := NewReportService(items, requests, time.UTC).(*reportService)
	svc.now = func() time.Time { return testNow }

	data, name, err := svc.InventoryWorkbook()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "LinhaViva_Relatorio_14-03-2026.xlsx" {
		t.Fatalf("unexpected file name %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 2 || sheets[0] != SheetInventory || sheets[1] != SheetRequests {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(SheetInventory)
	if err != nil {
		t.Fatalf("read inventory sheet: %v", err)
	}
	if len(rows) != 3 || rows[1][0] != "90394" || rows[1][2] != "50" || rows[2][1] != "ALÇA ESTRIBO" {
		t.Fatalf("unexpected inventory rows %v", rows)
	}

	rows, err = f.GetRows(SheetRequests)
	if err != nil {
		t.Fatalf("read requests sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one request, got %v", rows)
	}
	got := rows[1]
	if got[0] != "ABC123XYZ" || got[1] != "14/03/2026 12:00:00" || got[5] != "Atendido" {
		t.Fatalf("unexpected request row %v", got)
	}
	if !strings.Contains(got[6], "ABRACADEIRA CINTA(2), ALÇA ESTRIBO(1)") {
		t.Fatalf("unexpected items cell %q", got[6])
	}
}
