// Package reconcile turns loosely typed spreadsheet rows into the canonical
// inventory list.
//
// The remote sheet mixes inventory rows with log and header rows, and rows
// written by older clients use different field names. Reconcile filters the
// noise, normalizes field names and numbers, and deduplicates by material id.
package reconcile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"linha-viva/internal/model"
)

// MergePolicy decides how two records with the same id are combined.
type MergePolicy string

const (
	// MergeMax keeps the first record's name and the element-wise maximum
	// of the balances.
	MergeMax MergePolicy = "max"
	// MergeLastWins replaces the earlier record with the later one.
	MergeLastWins MergePolicy = "last"
)

func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case MergeMax, "":
		return MergeMax, nil
	case MergeLastWins:
		return MergeLastWins, nil
	}
	return "", fmt.Errorf("unknown merge policy %q (use %q or %q)", s, MergeMax, MergeLastWins)
}

// MaxIDLength bounds material ids; longer values are stray log cells.
const MaxIDLength = 20

// SystemKeywords mark log and header rows that leak into the inventory range.
var SystemKeywords = []string{
	"NOVA_SOLICITACAO",
	"ATUALIZACAO_STATUS_PEDIDO",
	"MOVIMENTACAO_ESTOQUE",
	"ATUALIZAR_ESTOQUE_TOTAL",
	"STATUS",
	"DATA",
	"ID_PEDIDO",
	"ID_TRANSACAO",
}

// Reconcile normalizes raw records into a deduplicated inventory list. Order
// follows the first occurrence of each id.
func Reconcile(raw []map[string]any, policy MergePolicy) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(raw))
	index := make(map[string]int, len(raw))

	for _, rec := range raw {
		item, ok := normalize(rec)
		if !ok {
			continue
		}

		pos, seen := index[item.ID]
		if !seen {
			index[item.ID] = len(out)
			out = append(out, item)
			continue
		}

		switch policy {
		case MergeLastWins:
			out[pos] = item
		default:
			existing := &out[pos]
			existing.BalanceItabaiana = max(existing.BalanceItabaiana, item.BalanceItabaiana)
			existing.BalanceDores = max(existing.BalanceDores, item.BalanceDores)
		}
	}

	for i := range out {
		out[i].Position = i
	}
	return out
}

func normalize(rec map[string]any) (model.InventoryItem, bool) {
	if rec == nil {
		return model.InventoryItem{}, false
	}

	rawName := firstTruthy(rec, "name", "MATERIAL")
	if rawName == nil {
		return model.InventoryItem{}, false
	}
	name := strings.ToUpper(toString(rawName))
	for _, kw := range SystemKeywords {
		if strings.Contains(name, kw) {
			return model.InventoryItem{}, false
		}
	}

	id := strings.TrimSpace(toString(firstTruthy(rec, "id", "ID_MATERIAL")))
	if id == "" || len(id) > MaxIDLength || strings.Contains(id, ":") {
		return model.InventoryItem{}, false
	}

	item := model.InventoryItem{
		ID:               id,
		Name:             name,
		BalanceItabaiana: toCount(firstPresent(rec, "balanceItabaiana", "SALDO_ITABAIANA")),
		BalanceDores:     toCount(firstPresent(rec, "balanceDores", "SALDO_DORES")),
	}

	// single-balance rows predate the two warehouses; their stock lives in Itabaiana
	if firstPresent(rec, "balanceItabaiana", "SALDO_ITABAIANA", "balanceDores", "SALDO_DORES") == nil {
		item.BalanceItabaiana = toCount(firstPresent(rec, "balance", "SALDO"))
	}
	return item, true
}

// firstTruthy returns the first value that is present and not empty/zero.
func firstTruthy(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t == "" {
				continue
			}
		case float64:
			if t == 0 || math.IsNaN(t) {
				continue
			}
		case bool:
			if !t {
				continue
			}
		}
		return v
	}
	return nil
}

// firstPresent returns the first non-nil value.
func firstPresent(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

// toCount coerces a cell to a non-negative whole count. Unparsable cells count as zero.
func toCount(v any) int {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case bool:
		if t {
			f = 1
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > model.MaxBalance {
		return 0
	}
	return int(math.Round(f))
}
