package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	a := New("test-secret")

	token, err := a.Issue("user-1", "maria")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := a.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "maria" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a").Issue("user-1", "maria")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := New("secret-b").Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	a := New("test-secret")
	a.now = func() time.Time { return time.Now().Add(-2 * TokenExpiry) }

	token, err := a.Issue("user-1", "maria")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := New("test-secret").Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := New("test-secret").Verify(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := New("test-secret").Verify(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
