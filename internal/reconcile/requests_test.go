package reconcile

import (
	"reflect"
	"testing"
	"time"

	"linha-viva/internal/model"
)

func TestRequests_SheetRows(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	raw := []map[string]any{
		{
			"ID_PEDIDO":   "k3j9z0abc",
			"DATA":        "14/03/2026, 09:30:05",
			"VTR":         float64(37989),
			"REGIAO":      "DORES",
			"SOLICITANTE": "JOÃO",
			"ITENS":       "LUVA ISOLANTE (2) | CINTA (1)",
			"STATUS":      "PENDENTE",
		},
		{"ID_PEDIDO": "K3J9Z0ABC", "STATUS": "ATENDIDO"},
		{"ID_PEDIDO": "", "VTR": "1"},
		nil,
	}

	got := Requests(raw, loc)
	if len(got) != 1 {
		t.Fatalf("expected 1 request, got %d: %+v", len(got), got)
	}
	req := got[0]
	if req.ID != "K3J9Z0ABC" || req.Vtr != "37989" || req.Region != model.RegionDores || req.RequesterName != "JOÃO" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Status != model.StatusServed {
		t.Fatalf("expected status row to mark request served, got %s", req.Status)
	}
	wantTS := time.Date(2026, 3, 14, 12, 30, 5, 0, time.UTC).UnixMilli()
	if req.Timestamp != wantTS {
		t.Fatalf("expected timestamp %d, got %d", wantTS, req.Timestamp)
	}
	wantItems := []model.RequestedItem{
		{ItemName: "LUVA ISOLANTE", Quantity: 2, Position: 0},
		{ItemName: "CINTA", Quantity: 1, Position: 1},
	}
	if !reflect.DeepEqual(req.Items, wantItems) {
		t.Fatalf("unexpected items: %+v", req.Items)
	}
}

func TestRequests_NeverDowngrades(t *testing.T) {
	raw := []map[string]any{
		{"id": "A1", "vtr": "100", "status": "served", "items": []any{
			map[string]any{"itemId": "90394", "itemName": "cinta", "quantity": float64(3)},
		}},
		{"ID_PEDIDO": "A1", "STATUS": "PENDENTE"},
	}

	got := Requests(raw, nil)
	if len(got) != 1 || got[0].Status != model.StatusServed {
		t.Fatalf("expected served request, got %+v", got)
	}
	if len(got[0].Items) != 1 || got[0].Items[0].ItemID != "90394" || got[0].Items[0].ItemName != "CINTA" {
		t.Fatalf("unexpected canonical items: %+v", got[0].Items)
	}
}

func TestRequests_BareStatusRow(t *testing.T) {
	raw := []map[string]any{
		{"ID_PEDIDO": "LOCAL1", "STATUS": "ATENDIDO"},
		{"ID_PEDIDO": "LOCAL2", "STATUS": "PENDENTE"},
	}

	got := Requests(raw, nil)
	if len(got) != 1 {
		t.Fatalf("expected only the served status row, got %+v", got)
	}
	if got[0].ID != "LOCAL1" || got[0].Status != model.StatusServed || got[0].Vtr != "" || len(got[0].Items) != 0 {
		t.Fatalf("unexpected bare request %+v", got[0])
	}
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"LUVA (2)", 1},
		{"LUVA (2) | CINTA (10) | PARAFUSO M16 (4)", 3},
		{"", 0},
		{"SEM QUANTIDADE | LUVA (0)", 0},
		{"ALICATE (ISOLADO) (1)", 1},
		{"LUVA (99999999999999999999) | CINTA (1000000001)", 0},
	}
	for _, tc := range tests {
		if got := ParseItems(tc.in); len(got) != tc.want {
			t.Errorf("ParseItems(%q): expected %d lines, got %d (%+v)", tc.in, tc.want, len(got), got)
		}
	}
}
