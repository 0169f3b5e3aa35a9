package model

// RequestStatus is the lifecycle state of a material request.
type RequestStatus string

const (
	StatusPending RequestStatus = "pending"
	StatusServed  RequestStatus = "served"
)

// MaterialRequest is a list of materials asked for by a field crew for one vehicle.
type MaterialRequest struct {
	ID            string          `gorm:"type:varchar(16);primaryKey" json:"id"`
	Vtr           string          `gorm:"type:varchar(16);not null;index" json:"vtr"`
	Region        Region          `gorm:"type:varchar(16)" json:"region"`
	RequesterName string          `gorm:"type:varchar(255)" json:"requesterName"`
	Items         []RequestedItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"items"`
	Status        RequestStatus   `gorm:"type:varchar(10);not null;index" json:"status"`
	Timestamp     int64           `gorm:"not null;index" json:"timestamp"` // unix ms

	AuditFields
}

// RequestedItem is one line of a material request.
type RequestedItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	RequestID string `gorm:"type:varchar(16);index;not null" json:"-"`
	Position  int    `json:"-"`
	ItemID    string `gorm:"type:varchar(20);not null" json:"itemId"`
	ItemName  string `gorm:"type:varchar(255)" json:"itemName"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// FulfillmentRegion is the warehouse a request is served from. Only
// requests tagged ITABAIANA leave Itabaiana; everything else, including
// requests without a region, is served from Dores.
func (r MaterialRequest) FulfillmentRegion() Region {
	if r.Region == RegionItabaiana {
		return RegionItabaiana
	}
	return RegionDores
}
