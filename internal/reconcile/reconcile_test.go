package reconcile

import (
	"reflect"
	"testing"

	"linha-viva/internal/model"
)

func TestReconcile_SpreadsheetRow(t *testing.T) {
	raw := []map[string]any{
		{"MATERIAL": "ABRACADEIRA", "ID_MATERIAL": "90394", "SALDO_ITABAIANA": "50"},
	}

	got := Reconcile(raw, MergeMax)
	want := []model.InventoryItem{
		{ID: "90394", Name: "ABRACADEIRA", BalanceItabaiana: 50, BalanceDores: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result:\n got %+v\nwant %+v", got, want)
	}
}

func TestReconcile_Exclusions(t *testing.T) {
	cases := []struct {
		name string
		rec  map[string]any
	}{
		{name: "nil record", rec: nil},
		{name: "missing name and id", rec: map[string]any{"SALDO_ITABAIANA": 3}},
		{name: "empty name and id", rec: map[string]any{"name": "", "id": ""}},
		{name: "missing id", rec: map[string]any{"name": "PARAFUSO"}},
		{name: "blank id", rec: map[string]any{"name": "PARAFUSO", "id": "   "}},
		{name: "id too long", rec: map[string]any{"name": "PARAFUSO", "id": "123456789012345678901"}},
		{name: "id with colon", rec: map[string]any{"name": "PARAFUSO", "id": "10:32:11"}},
		{name: "status keyword", rec: map[string]any{"MATERIAL": "STATUS", "ID_MATERIAL": "1"}},
		{name: "data keyword lowercase", rec: map[string]any{"name": "data", "id": "2"}},
		{name: "request log row", rec: map[string]any{"MATERIAL": "NOVA_SOLICITACAO X", "ID_MATERIAL": "3"}},
		{name: "movement log row", rec: map[string]any{"name": "MOVIMENTACAO_ESTOQUE", "id": "4"}},
		{name: "transaction header", rec: map[string]any{"name": "ID_TRANSACAO", "id": "5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile([]map[string]any{tc.rec}, MergeMax)
			if len(got) != 0 {
				t.Fatalf("expected record to be excluded, got %+v", got)
			}
		})
	}
}

func TestReconcile_FieldNormalization(t *testing.T) {
	raw := []map[string]any{
		{"name": "cabo de aco", "id": float64(90836), "balanceItabaiana": float64(10), "balanceDores": "4"},
		{"name": "", "MATERIAL": "Chassi", "id": "", "ID_MATERIAL": " 37989 ", "SALDO_DORES": "abc"},
		{"name": "Luva", "id": "77", "balance": float64(9)},
		{"name": "Fita", "id": "78", "balanceItabaiana": float64(-4), "SALDO_DORES": "2.6"},
		{"name": "Poste", "id": "79", "balanceItabaiana": float64(1e30), "SALDO_DORES": "9e99"},
		{"name": "Cruzeta", "id": "80", "balanceItabaiana": float64(model.MaxBalance), "balanceDores": float64(model.MaxBalance + 1)},
	}

	got := Reconcile(raw, MergeMax)
	want := []model.InventoryItem{
		{ID: "90836", Name: "CABO DE ACO", BalanceItabaiana: 10, BalanceDores: 4, Position: 0},
		{ID: "37989", Name: "CHASSI", BalanceItabaiana: 0, BalanceDores: 0, Position: 1},
		{ID: "77", Name: "LUVA", BalanceItabaiana: 9, BalanceDores: 0, Position: 2},
		{ID: "78", Name: "FITA", BalanceItabaiana: 0, BalanceDores: 3, Position: 3},
		{ID: "79", Name: "POSTE", BalanceItabaiana: 0, BalanceDores: 0, Position: 4},
		{ID: "80", Name: "CRUZETA", BalanceItabaiana: model.MaxBalance, BalanceDores: 0, Position: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result:\n got %+v\nwant %+v", got, want)
	}
}

func TestReconcile_DuplicateMax(t *testing.T) {
	raw := []map[string]any{
		{"name": "A", "id": "1", "balanceItabaiana": 5, "balanceDores": 9},
		{"name": "B", "id": "2", "balanceItabaiana": 1},
		{"name": "A NOVO", "id": "1", "balanceItabaiana": 8, "balanceDores": 2},
	}

	got := Reconcile(raw, MergeMax)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	first := got[0]
	if first.ID != "1" || first.Name != "A" {
		t.Fatalf("expected first occurrence kept in place, got %+v", first)
	}
	if first.BalanceItabaiana != 8 || first.BalanceDores != 9 {
		t.Fatalf("expected element-wise max 8/9, got %d/%d", first.BalanceItabaiana, first.BalanceDores)
	}
}

func TestReconcile_DuplicateLastWins(t *testing.T) {
	raw := []map[string]any{
		{"name": "A", "id": "1", "balanceItabaiana": 5, "balanceDores": 9},
		{"name": "B", "id": "2", "balanceItabaiana": 1},
		{"name": "A NOVO", "id": "1", "balanceItabaiana": 8, "balanceDores": 2},
	}

	got := Reconcile(raw, MergeLastWins)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	first := got[0]
	if first.ID != "1" || first.Name != "A NOVO" {
		t.Fatalf("expected last record at first position, got %+v", first)
	}
	if first.BalanceItabaiana != 8 || first.BalanceDores != 2 {
		t.Fatalf("expected last balances 8/2, got %d/%d", first.BalanceItabaiana, first.BalanceDores)
	}
	if got[1].ID != "2" {
		t.Fatalf("expected order preserved, got %+v", got)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	raw := []map[string]any{
		{"MATERIAL": "abracadeira", "ID_MATERIAL": 90394, "SALDO_ITABAIANA": "50"},
		{"MATERIAL": "STATUS", "ID_MATERIAL": "x"},
		{"name": "cinta", "id": "614644", "balanceDores": 3},
		{"name": "cinta", "id": "614644", "balanceItabaiana": 7},
	}

	for _, policy := range []MergePolicy{MergeMax, MergeLastWins} {
		t.Run(string(policy), func(t *testing.T) {
			once := Reconcile(raw, policy)
			twice := Reconcile(asRecords(once), policy)
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("reconcile is not idempotent:\n once %+v\ntwice %+v", once, twice)
			}
		})
	}
}

func TestReconcile_Empty(t *testing.T) {
	if got := Reconcile(nil, MergeMax); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestParseMergePolicy(t *testing.T) {
	for in, want := range map[string]MergePolicy{"": MergeMax, "MAX": MergeMax, " last ": MergeLastWins} {
		got, err := ParseMergePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseMergePolicy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMergePolicy("sum"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

// asRecords turns canonical items back into the raw record shape.
func asRecords(items []model.InventoryItem) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, it := range items {
		out[i] = map[string]any{
			"id":               it.ID,
			"name":             it.Name,
			"balanceItabaiana": it.BalanceItabaiana,
			"balanceDores":     it.BalanceDores,
		}
	}
	return out
}
