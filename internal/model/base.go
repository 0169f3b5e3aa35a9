package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditFields holds the standard audit trail columns.
type AuditFields struct {
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	CreatedBy string    `gorm:"type:varchar(64)" json:"-"`
	UpdatedBy string    `gorm:"type:varchar(64)" json:"-"`
}

// BaseModel handles a generated ID (UUID) plus the audit trail.
type BaseModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	AuditFields
}

// Hook Before Create untuk generate UUID otomatis
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}
