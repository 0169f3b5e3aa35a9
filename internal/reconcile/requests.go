package reconcile

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"linha-viva/internal/model"
)

// requestDateLayout matches the DATA column written with each new request.
const requestDateLayout = "02/01/2006, 15:04:05"

var itemLine = regexp.MustCompile(`^(.*\S)\s*\((\d+)\)$`)

// Requests parses request rows read back from the sheet. Rows without an id
// are dropped, and a request once marked served stays served. A served status
// row for an id with no full row is returned bare (no vtr, no items) so the
// caller can upgrade a request it already holds. Line items parsed from the
// ITENS column carry names only; callers resolve material ids.
func Requests(raw []map[string]any, loc *time.Location) []model.MaterialRequest {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]model.MaterialRequest, 0, len(raw))
	seen := make(map[string]int, len(raw))
	served := make(map[string]bool)
	for _, rec := range raw {
		if rec == nil {
			continue
		}
		id := strings.ToUpper(strings.TrimSpace(toString(firstTruthy(rec, "id", "ID_PEDIDO"))))
		if id == "" || len(id) > 16 {
			continue
		}

		req := model.MaterialRequest{
			ID:            id,
			Vtr:           strings.TrimSpace(toString(firstTruthy(rec, "vtr", "VTR"))),
			RequesterName: strings.TrimSpace(toString(firstTruthy(rec, "requesterName", "SOLICITANTE"))),
			Status:        parseStatus(toString(firstTruthy(rec, "status", "STATUS"))),
			Timestamp:     parseTimestamp(rec, loc),
		}
		if r, err := model.ParseRegion(toString(firstTruthy(rec, "region", "REGIAO"))); err == nil {
			req.Region = r
		}
		req.Items = parseItems(rec)

		// status updates are appended to the same log as bare id/status rows
		if req.Vtr == "" && len(req.Items) == 0 {
			if req.Status == model.StatusServed {
				served[id] = true
			}
			continue
		}
		if pos, ok := seen[id]; ok {
			if req.Status == model.StatusServed {
				out[pos].Status = model.StatusServed
			}
			continue
		}
		seen[id] = len(out)
		out = append(out, req)
	}

	for i := range out {
		if served[out[i].ID] {
			out[i].Status = model.StatusServed
			delete(served, out[i].ID)
		}
	}
	for _, rec := range raw {
		if rec == nil {
			continue
		}
		id := strings.ToUpper(strings.TrimSpace(toString(firstTruthy(rec, "id", "ID_PEDIDO"))))
		if served[id] {
			out = append(out, model.MaterialRequest{ID: id, Status: model.StatusServed})
			delete(served, id)
		}
	}
	return out
}

// ParseItems splits an ITENS cell ("LUVA (2) | CINTA (1)") into request lines.
func ParseItems(s string) []model.RequestedItem {
	var items []model.RequestedItem
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		m := itemLine.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		q, err := strconv.Atoi(m[2])
		if err != nil || q <= 0 || q > model.MaxBalance {
			continue
		}
		items = append(items, model.RequestedItem{
			ItemName: strings.ToUpper(strings.TrimSpace(m[1])),
			Quantity: q,
			Position: len(items),
		})
	}
	return items
}

func parseItems(rec map[string]any) []model.RequestedItem {
	if list, ok := rec["items"].([]any); ok {
		var items []model.RequestedItem
		for _, el := range list {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			q := toCount(m["quantity"])
			if q <= 0 {
				continue
			}
			items = append(items, model.RequestedItem{
				ItemID:   strings.TrimSpace(toString(m["itemId"])),
				ItemName: strings.ToUpper(toString(m["itemName"])),
				Quantity: q,
				Position: len(items),
			})
		}
		return items
	}
	return ParseItems(toString(firstTruthy(rec, "ITENS")))
}

func parseStatus(s string) model.RequestStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ATENDIDO", "SERVED":
		return model.StatusServed
	}
	return model.StatusPending
}

func parseTimestamp(rec map[string]any, loc *time.Location) int64 {
	if v := firstTruthy(rec, "timestamp"); v != nil {
		if ms := toCount(v); ms > 0 {
			return int64(ms)
		}
	}
	s := strings.TrimSpace(toString(firstTruthy(rec, "DATA")))
	if s == "" {
		return 0
	}
	if t, err := time.ParseInLocation(requestDateLayout, s, loc); err == nil {
		return t.UnixMilli()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UnixMilli()
	}
	return 0
}
