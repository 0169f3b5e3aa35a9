package model

import (
	"math"
	"testing"
)

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"in", 3, 5, 8},
		{"out clamps at zero", 3, -10, 0},
		{"in saturates at cap", MaxBalance - 1, 10, MaxBalance},
		{"in never wraps", MaxBalance, math.MaxInt, MaxBalance},
		{"out of huge delta", MaxBalance, -math.MaxInt, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := InventoryItem{BalanceDores: tc.start, BalanceItabaiana: 7}
			if got := it.ApplyDelta(RegionDores, tc.delta); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if it.BalanceDores != tc.want || it.BalanceItabaiana != 7 {
				t.Fatalf("unexpected balances %+v", it)
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	for _, in := range []string{"itabaiana", " DORES ", "Dores"} {
		if _, err := ParseRegion(in); err != nil {
			t.Fatalf("ParseRegion(%q): %v", in, err)
		}
	}
	if _, err := ParseRegion("ARACAJU"); err == nil {
		t.Fatalf("expected unknown region error")
	}
}

func TestFulfillmentRegion(t *testing.T) {
	tests := []struct {
		region Region
		want   Region
	}{
		{RegionItabaiana, RegionItabaiana},
		{RegionDores, RegionDores},
		{"", RegionDores},
		{"ARACAJU", RegionDores},
	}
	for _, tc := range tests {
		if got := (MaterialRequest{Region: tc.region}).FulfillmentRegion(); got != tc.want {
			t.Errorf("FulfillmentRegion(%q): expected %s, got %s", tc.region, tc.want, got)
		}
	}
}
