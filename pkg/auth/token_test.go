package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSessionTokenShapeAndUniqueness(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 32; i++ {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("new token: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars got %d", len(token))
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}

func TestTokenFromRequestBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	if got := TokenFromRequest(req); got != "abc123" {
		t.Fatalf("expected abc123 got %q", got)
	}

	req.Header.Set("Authorization", "bearer lower-prefix")
	if got := TokenFromRequest(req); got != "lower-prefix" {
		t.Fatalf("expected lower-prefix got %q", got)
	}

	// A raw header value without the scheme is accepted as-is.
	req.Header.Set("Authorization", "raw-token")
	if got := TokenFromRequest(req); got != "raw-token" {
		t.Fatalf("expected raw-token got %q", got)
	}
}

func TestTokenFromRequestCookieFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
	if got := TokenFromRequest(req); got != "cookie-token" {
		t.Fatalf("expected cookie-token got %q", got)
	}
}

func TestTokenFromRequestHeaderBeatsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
	if got := TokenFromRequest(req); got != "header-token" {
		t.Fatalf("expected header precedence, got %q", got)
	}
}

func TestTokenFromRequestMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TokenFromRequest(req); got != "" {
		t.Fatalf("expected empty token got %q", got)
	}
}
