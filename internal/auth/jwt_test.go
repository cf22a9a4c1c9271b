package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 4*time.Hour)

	token, err := svc.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want %q", claims.Username, "admin")
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > 4*time.Hour {
		t.Errorf("expiry not within TTL: %v", claims.ExpiresAt)
	}
}

func TestJWTServiceValidateFailures(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		past := NewJWTService("test-secret", -time.Minute)
		token, err := past.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
			t.Errorf("err = %v, want ErrTokenExpired", err)
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		token, err := svc.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		flipped := flipLastByte(token)
		if _, err := svc.Validate(flipped); !errors.Is(err, ErrTokenSignature) {
			t.Errorf("err = %v, want ErrTokenSignature", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", time.Hour)
		token, err := other.Issue("admin")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := svc.Validate(token); !errors.Is(err, ErrTokenSignature) {
			t.Errorf("err = %v, want ErrTokenSignature", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := svc.Validate("not.a.token"); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("err = %v, want ErrTokenMalformed", err)
		}
	})
}

// flipLastByte swaps the final character of the token's signature for a
// different base64url character.
func flipLastByte(token string) string {
	parts := strings.Split(token, ".")
	sig := parts[2]
	last := sig[len(sig)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	parts[2] = sig[:len(sig)-1] + string(replacement)
	return strings.Join(parts, ".")
}
