package service

import (
	"errors"
	"fmt"
	"strings"

	"linha-viva/internal/sheets"
)

var (
	ErrItemNotFound        = errors.New("material not found")
	ErrDuplicateItem       = errors.New("material id already exists")
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrInsufficientBalance = errors.New("quantity exceeds the available balance")
	ErrRefreshInProgress   = errors.New("refresh already in progress")
)

// ValidationError carries a message safe to show to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// FailedWrite is one remote write that did not land.
type FailedWrite struct {
	Type sheets.WriteType `json:"type"`
	Ref  string           `json:"ref,omitempty"`
	Err  error            `json:"-"`
}

// PartialSyncError means the local change was committed but some of the
// remote writes that mirror it failed. There is no rollback; the sheet may
// hold only part of the change.
type PartialSyncError struct {
	Writes []FailedWrite
}

func (e *PartialSyncError) Error() string {
	parts := make([]string, 0, len(e.Writes))
	for _, w := range e.Writes {
		label := string(w.Type)
		if w.Ref != "" {
			label += " " + w.Ref
		}
		parts = append(parts, fmt.Sprintf("%s: %v", label, w.Err))
	}
	return fmt.Sprintf("%d remote write(s) failed: %s", len(e.Writes), strings.Join(parts, "; "))
}

func (e *PartialSyncError) Unwrap() []error {
	errs := make([]error, 0, len(e.Writes))
	for _, w := range e.Writes {
		errs = append(errs, w.Err)
	}
	return errs
}

// Messages lists the failures for API responses.
func (e *PartialSyncError) Messages() []string {
	out := make([]string, 0, len(e.Writes))
	for _, w := range e.Writes {
		out = append(out, fmt.Sprintf("%s: %v", w.Type, w.Err))
	}
	return out
}

// SyncOnly reports whether err only concerns the remote mirror, i.e. the
// local change went through.
func SyncOnly(err error) (*PartialSyncError, bool) {
	var pe *PartialSyncError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
