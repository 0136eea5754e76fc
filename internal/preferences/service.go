package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/projectscope/projectscope-backend/pkg/enums"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/redis"
)

// Preferences is the per-browser-session personalization bag. The session id
// is supplied by the client and is independent of authentication grants.
type Preferences struct {
	SessionID        string   `json:"sessionId"`
	SelectedRole     string   `json:"selectedRole,omitempty"`
	SavedSearches    []string `json:"savedSearches"`
	FavoriteProjects []int    `json:"favoriteProjects"`
}

// UpsertRequest patches a preference bag. Nil fields are left untouched when
// the bag already exists.
type UpsertRequest struct {
	SessionID        string    `json:"sessionId" validate:"required,min=1"`
	SelectedRole     *string   `json:"selectedRole,omitempty"`
	SavedSearches    *[]string `json:"savedSearches,omitempty"`
	FavoriteProjects *[]int    `json:"favoriteProjects,omitempty"`
}

// Service stores preference bags in redis under a namespaced key with a
// rolling TTL.
type Service struct {
	store *redis.Client
	ttl   time.Duration
}

// NewService constructs the preferences service.
func NewService(store *redis.Client, ttl time.Duration) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Service{store: store, ttl: ttl}, nil
}

// Upsert creates the bag when absent and patches it otherwise. Every write
// refreshes the TTL.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*Preferences, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sessionId is required")
	}
	if req.SelectedRole != nil && *req.SelectedRole != "" {
		if _, err := enums.ParseRole(*req.SelectedRole); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role").
				WithDetails(map[string]string{"selectedRole": "must be one of the known personas"})
		}
	}

	current, err := s.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &Preferences{SessionID: sessionID}
	}

	if req.SelectedRole != nil {
		current.SelectedRole = strings.ToLower(strings.TrimSpace(*req.SelectedRole))
	}
	if req.SavedSearches != nil {
		current.SavedSearches = *req.SavedSearches
	}
	if req.FavoriteProjects != nil {
		current.FavoriteProjects = *req.FavoriteProjects
	}
	if current.SavedSearches == nil {
		current.SavedSearches = []string{}
	}
	if current.FavoriteProjects == nil {
		current.FavoriteProjects = []int{}
	}

	payload, err := json.Marshal(current)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode preferences")
	}
	if err := s.store.Set(ctx, s.store.PreferencesKey(sessionID), payload, s.ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store preferences")
	}
	return current, nil
}

// Get returns the bag for a session id, or not-found when nothing was ever
// stored or the TTL has elapsed.
func (s *Service) Get(ctx context.Context, sessionID string) (*Preferences, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sessionId is required")
	}

	current, err := s.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "preferences not found")
	}
	return current, nil
}

func (s *Service) fetch(ctx context.Context, sessionID string) (*Preferences, error) {
	raw, err := s.store.Get(ctx, s.store.PreferencesKey(sessionID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load preferences")
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode preferences")
	}
	prefs.SessionID = sessionID
	return &prefs, nil
}
