package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, exp, err := m.GenerateToken("admin", "v1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry must be in the future")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != "admin" || claims.SessionVersion != "v1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestManager_Rejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, _, _ := m.GenerateToken("admin", "v1")

	other := NewManager("other-secret", time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}

	if _, err := m.ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}

	expired := NewManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.GenerateToken("admin", "v1")
	if _, err := m.ValidateToken(old); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}
