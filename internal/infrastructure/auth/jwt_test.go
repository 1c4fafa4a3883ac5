package auth

import (
	"errors"
	"testing"
	"time"

	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	token, err := issuer.Issue("user-123", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "admin@example.com")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Errorf("expiry window = %v, want %v", got, time.Hour)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	// Mint a token two hours in the past so it is expired at verification.
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue("user-123", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	issuer.now = time.Now
	if _, err := issuer.Verify(token); !errors.Is(err, domerrors.ErrInvalidToken) {
		t.Errorf("Verify expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), time.Hour)
	token, err := issuer.Issue("user-123", "admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	other := NewTokenIssuer([]byte("secret-b"), time.Hour)
	if _, err := other.Verify(token); !errors.Is(err, domerrors.ErrInvalidToken) {
		t.Errorf("Verify with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, domerrors.ErrInvalidToken) {
		t.Errorf("Verify garbage: err = %v, want ErrInvalidToken", err)
	}
}
