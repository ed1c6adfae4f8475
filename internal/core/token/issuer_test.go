package token

import (
	"strings"
	"testing"
	"time"

	"github.com/userhub/auth-service/internal/core/domain"
)

var testUser = &domain.User{
	ID:       "64f0c2a1",
	Username: "alice",
	Email:    "alice@example.com",
	Role:     domain.RoleRegular,
}

func TestIssuer_ClaimsRoundTrip(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "secret", AccessTTL: time.Hour})

	tok, err := issuer.AccessToken(testUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID != testUser.ID || claims.Username != "alice" || claims.Email != "alice@example.com" || claims.Role != domain.RoleRegular {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("expiry not embedded correctly: %v", claims.ExpiresAt)
	}
}

func TestIssuer_DefaultTTLs(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "secret"})
	if issuer.AccessTTL() != time.Hour {
		t.Fatalf("expected 1h access TTL, got %v", issuer.AccessTTL())
	}
	if issuer.RefreshTTL() != 7*24*time.Hour {
		t.Fatalf("expected 168h refresh TTL, got %v", issuer.RefreshTTL())
	}
}

func TestIssuer_RefreshOutlivesAccess(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "secret"})

	access, err := issuer.AccessToken(testUser)
	if err != nil {
		t.Fatalf("sign access: %v", err)
	}
	refresh, err := issuer.RefreshToken(testUser)
	if err != nil {
		t.Fatalf("sign refresh: %v", err)
	}

	ac, err := issuer.Parse(access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	rc, err := issuer.Parse(refresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if !rc.ExpiresAt.Time.After(ac.ExpiresAt.Time) {
		t.Fatalf("refresh token should expire after the access token")
	}
}

func TestIssuer_Parse_FailsClosed(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "secret"})

	valid, err := issuer.AccessToken(testUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewIssuer(Config{Secret: "not-the-secret"})
		if _, err := other.Parse(valid); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		stale := NewIssuer(Config{Secret: "secret"})
		tok, err := stale.sign(testUser, -time.Minute)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := issuer.Parse(tok); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		flip := "A"
		if strings.HasPrefix(parts[1], "A") {
			flip = "B"
		}
		parts[1] = flip + parts[1][1:]
		if _, err := issuer.Parse(strings.Join(parts, ".")); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := issuer.Parse("not.a.jwt"); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
