package model

type TransactionType string

const (
	TxIn  TransactionType = "in"
	TxOut TransactionType = "out"
)

// Transaction is one stock movement of the append-only log.
type Transaction struct {
	BaseModel
	Reference    string          `gorm:"type:varchar(64);index" json:"reference"` // TX-<ms> atau PED-<vtr>-<ms>
	ItemID       string          `gorm:"type:varchar(20);not null;index" json:"itemId"`
	ItemName     string          `gorm:"type:varchar(255)" json:"itemName"`
	Region       Region          `gorm:"type:varchar(16);not null" json:"region"`
	Type         TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Description  string          `json:"description"`
	BalanceAfter int             `json:"balanceAfter"`
	Timestamp    int64           `gorm:"not null;index" json:"timestamp"` // unix ms
}

// Delta is the signed change this movement applies to a balance.
func (t Transaction) Delta() int {
	if t.Type == TxIn {
		return t.Quantity
	}
	return -t.Quantity
}
