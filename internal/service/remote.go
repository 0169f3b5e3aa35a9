package service

import (
	"context"

	"linha-viva/internal/sheets"
)

//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks

// RemoteStore is the spreadsheet endpoint.
type RemoteStore interface {
	ReadInventory(ctx context.Context) ([]map[string]any, error)
	ReadRequests(ctx context.Context) ([]map[string]any, error)
	Write(ctx context.Context, typ sheets.WriteType, payload any) (sheets.Ack, error)
}

// Notifier receives live events for connected clients.
type Notifier interface {
	Publish(eventType, action string, data any, message string)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, string, any, string) {}
