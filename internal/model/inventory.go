package model

import (
	"fmt"
	"slices"
	"strings"
)

// Region identifies one of the two warehouses.
type Region string

const (
	RegionItabaiana Region = "ITABAIANA"
	RegionDores     Region = "DORES"
)

// Regions lists every warehouse in display order.
var Regions = []Region{RegionItabaiana, RegionDores}

// ParseRegion accepts any casing and surrounding spaces.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(Regions, r) {
		return r, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// InventoryItem is a material with independent balances per warehouse.
// Balances never go below zero.
type InventoryItem struct {
	ID               string `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(255);not null" json:"name"`
	BalanceItabaiana int    `gorm:"not null;default:0" json:"balanceItabaiana"`
	BalanceDores     int    `gorm:"not null;default:0" json:"balanceDores"`

	// Position keeps the list order of the local snapshot (lower first).
	Position int `gorm:"index" json:"-"`

	AuditFields
}

// Balance returns the stock held in the given region.
func (i InventoryItem) Balance(r Region) int {
	if r == RegionDores {
		return i.BalanceDores
	}
	return i.BalanceItabaiana
}

// ApplyDelta adds delta to the region balance, clamping to [0, MaxBalance],
// and returns the resulting balance.
func (i *InventoryItem) ApplyDelta(r Region, delta int) int {
	cur := i.Balance(r)
	next := cur + delta
	switch {
	case delta > 0 && (next < cur || next > MaxBalance):
		next = MaxBalance
	case next < 0:
		next = 0
	}
	if r == RegionDores {
		i.BalanceDores = next
	} else {
		i.BalanceItabaiana = next
	}
	return next
}

// IsCritical reports whether the region balance is at or below the critical threshold.
func (i InventoryItem) IsCritical(r Region) bool {
	return i.Balance(r) <= CriticalThreshold
}
