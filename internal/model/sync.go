package model

import "time"

// SyncStatus is what the UI shows about the spreadsheet link.
type SyncStatus struct {
	Syncing        bool       `json:"syncing"`
	Error          bool       `json:"error"`
	LastError      string     `json:"lastError,omitempty"`
	LastSync       *time.Time `json:"lastSync,omitempty"`
	PendingRefresh bool       `json:"pendingRefresh"`
}
