package model

import "time"

// Setting keys
const (
	SettingSheetsURL      = "sheets_url"
	SettingSessionVersion = "admin_session_version"
)

// Setting is a persisted key/value pair of local configuration.
type Setting struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
