package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/projectscope/projectscope-backend/internal/auth"
	"github.com/projectscope/projectscope-backend/internal/markets"
	"github.com/projectscope/projectscope-backend/internal/preferences"
	"github.com/projectscope/projectscope-backend/internal/projects"
	"github.com/projectscope/projectscope-backend/internal/users"
	"github.com/projectscope/projectscope-backend/pkg/config"
	"github.com/projectscope/projectscope-backend/pkg/db/models"
	"github.com/projectscope/projectscope-backend/pkg/enums"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/logger"
	"github.com/projectscope/projectscope-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubAuthService struct {
	user *models.User
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.Result, error) {
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not wired in tests")
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.Result, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
}

func (s stubAuthService) Logout(ctx context.Context, token string) error { return nil }

func (s stubAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if s.user != nil && token == "valid-token" {
		return s.user, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired or missing")
}

type stubUsersService struct {
	user *users.UserDTO
}

func (s stubUsersService) Get(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	if s.user != nil {
		return s.user, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func (s stubUsersService) UpdateProfile(ctx context.Context, id uuid.UUID, req users.UpdateProfileRequest) (*users.UserDTO, error) {
	return s.user, nil
}

func (s stubUsersService) ChangePassword(ctx context.Context, id uuid.UUID, req users.ChangePasswordRequest) error {
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.Port = "0"
	cfg.Session.CookieName = "session"
	cfg.Session.TTL = 720 * time.Hour
	cfg.Session.PreferencesTTL = 720 * time.Hour
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func newTestRouter(t *testing.T, authSvc auth.Service, usersSvc users.Service) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewFromAddr(mr.Addr())
	t.Cleanup(func() { redisClient.Close() })

	prefsSvc, err := preferences.NewService(redisClient, time.Hour)
	if err != nil {
		t.Fatalf("preferences service: %v", err)
	}

	catalog := projects.NewStore()
	if err := projects.Seed(catalog); err != nil {
		t.Fatalf("seed: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:      testConfig(),
		Logger:      logg,
		DB:          stubPinger{},
		Redis:       redisClient,
		Auth:        authSvc,
		Users:       usersSvc,
		Preferences: prefsSvc,
		Catalog:     catalog,
		Markets:     markets.NewService(catalog),
	})
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestPublicCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	paths := []string{
		"/api/projects",
		"/api/projects/1",
		"/api/market-indicators",
		"/api/trending-sectors",
		"/api/filter-options",
		"/api/cities/Saudi%20Arabia",
		"/api/districts/United%20Arab%20Emirates/Dubai",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestProtectedRoutesRejectMissingSession(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPut, "/api/account/profile"},
		{http.MethodPut, "/api/account/password"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 got %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestAuthMeWithValidSession(t *testing.T) {
	userID := uuid.New()
	user := &models.User{ID: userID, Email: "me@example.com", SelectedRole: enums.RoleInvestor}
	dto := &users.UserDTO{ID: userID, Email: "me@example.com", SelectedRole: enums.RoleInvestor}
	router := newTestRouter(t, stubAuthService{user: user}, stubUsersService{user: dto})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			User users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.User.Email != "me@example.com" {
		t.Fatalf("unexpected user %+v", envelope.Data.User)
	}
}

func TestPreferencesRoundTripThroughRouter(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	body := `{"sessionId": "browser-9", "selectedRole": "developer"}`
	post := httptest.NewRequest(http.MethodPost, "/api/preferences", strings.NewReader(body))
	post.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, post)
	if resp.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/preferences/browser-9", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, get)
	if resp.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Preferences preferences.Preferences `json:"preferences"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Preferences.SelectedRole != "developer" {
		t.Fatalf("unexpected bag %+v", envelope.Data.Preferences)
	}
}

func TestLoginFailureThroughRouter(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	body := `{"email": "who@example.com", "password": "whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t, stubAuthService{}, stubUsersService{})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
