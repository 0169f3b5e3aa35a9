package sheets

import (
	"fmt"
	"strings"
	"time"

	"linha-viva/internal/model"
)

// DateLayout is how dates are written to the sheet (pt-BR locale string).
const DateLayout = "02/01/2006, 15:04:05"

// MovementRow is one MOVIMENTACAO_ESTOQUE log entry.
type MovementRow struct {
	ID           string `json:"ID_TRANSACAO"`
	Date         string `json:"DATA"`
	ItemID       string `json:"ID_MATERIAL"`
	Material     string `json:"MATERIAL"`
	Movement     string `json:"MOVIMENTACAO"`
	Quantity     int    `json:"QUANTIDADE"`
	Note         string `json:"OBSERVACAO"`
	BalanceAfter *int   `json:"SALDO_FINAL,omitempty"`
}

// RequestRow is one NOVA_SOLICITACAO entry.
type RequestRow struct {
	ID        string `json:"ID_PEDIDO"`
	Date      string `json:"DATA"`
	Vtr       string `json:"VTR"`
	Region    string `json:"REGIAO"`
	Requester string `json:"SOLICITANTE"`
	Items     string `json:"ITENS"`
	Status    string `json:"STATUS"`
}

// StatusRow is one ATUALIZACAO_STATUS_PEDIDO entry.
type StatusRow struct {
	ID     string `json:"ID_PEDIDO"`
	Status string `json:"STATUS"`
}

// InventoryRow is one line of the ATUALIZAR_ESTOQUE_TOTAL table.
type InventoryRow struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	BalanceItabaiana int    `json:"balanceItabaiana"`
	BalanceDores     int    `json:"balanceDores"`
}

func FormatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// StatusLabel is the sheet's label for a request status.
func StatusLabel(s model.RequestStatus) string {
	if s == model.StatusServed {
		return "ATENDIDO"
	}
	return "PENDENTE"
}

// MovementLabel renders e.g. "ENTRADA (ITABAIANA)" or "SAÍDA (DORES)".
func MovementLabel(t model.TransactionType, r model.Region) string {
	kind := "SAÍDA"
	if t == model.TxIn {
		kind = "ENTRADA"
	}
	return fmt.Sprintf("%s (%s)", kind, r)
}

// ItemsSummary renders request lines as "NAME (qty) | NAME (qty)".
func ItemsSummary(items []model.RequestedItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.ItemName, it.Quantity))
	}
	return strings.Join(parts, " | ")
}

// NewMovementRow builds the log entry for a manual stock movement.
func NewMovementRow(tx model.Transaction, at time.Time, loc *time.Location) MovementRow {
	balance := tx.BalanceAfter
	return MovementRow{
		ID:           tx.Reference,
		Date:         FormatDate(at, loc),
		ItemID:       tx.ItemID,
		Material:     strings.ToUpper(tx.ItemName),
		Movement:     MovementLabel(tx.Type, tx.Region),
		Quantity:     tx.Quantity,
		Note:         strings.ToUpper(tx.Description),
		BalanceAfter: &balance,
	}
}

// NewFulfillmentRow builds the log entry for one served request line. The
// sheet does not receive a final balance for these.
func NewFulfillmentRow(tx model.Transaction, at time.Time, loc *time.Location) MovementRow {
	row := NewMovementRow(tx, at, loc)
	row.BalanceAfter = nil
	return row
}

func NewRequestRow(req model.MaterialRequest, loc *time.Location) RequestRow {
	return RequestRow{
		ID:        req.ID,
		Date:      FormatDate(time.UnixMilli(req.Timestamp), loc),
		Vtr:       req.Vtr,
		Region:    strings.ToUpper(string(req.Region)),
		Requester: strings.ToUpper(req.RequesterName),
		Items:     ItemsSummary(req.Items),
		Status:    StatusLabel(model.StatusPending),
	}
}

func NewStatusRow(id string, status model.RequestStatus) StatusRow {
	return StatusRow{ID: id, Status: StatusLabel(status)}
}

// InventoryTable builds the full-table payload in list order.
func InventoryTable(items []model.InventoryItem) []InventoryRow {
	rows := make([]InventoryRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, InventoryRow{
			ID:               it.ID,
			Name:             it.Name,
			BalanceItabaiana: it.BalanceItabaiana,
			BalanceDores:     it.BalanceDores,
		})
	}
	return rows
}
