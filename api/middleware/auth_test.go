package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	pkgauth "github.com/projectscope/projectscope-backend/pkg/auth"
	"github.com/projectscope/projectscope-backend/pkg/db/models"
	"github.com/projectscope/projectscope-backend/pkg/enums"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
)

type stubAuthenticator struct {
	user *models.User
	err  error
}

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func okHandler(captured *struct{ user, role string }) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.user = UserIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	var captured struct{ user, role string }
	handler := Auth(stubAuthenticator{}, nil)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidSession(t *testing.T) {
	var captured struct{ user, role string }
	handler := Auth(stubAuthenticator{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired or missing")}, nil)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSeedsContextFromBearerToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), SelectedRole: enums.RoleConsultant}
	var captured struct{ user, role string }
	handler := Auth(stubAuthenticator{user: user}, nil)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user != user.ID.String() {
		t.Fatalf("expected user %s got %s", user.ID, captured.user)
	}
	if captured.role != string(enums.RoleConsultant) {
		t.Fatalf("expected consultant role got %s", captured.role)
	}
}

func TestAuthAcceptsSessionCookie(t *testing.T) {
	user := &models.User{ID: uuid.New(), SelectedRole: enums.RoleInvestor}
	var captured struct{ user, role string }
	handler := Auth(stubAuthenticator{user: user}, nil)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: pkgauth.CookieName, Value: "cookie-token"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user != user.ID.String() {
		t.Fatalf("expected user %s got %s", user.ID, captured.user)
	}
}
