package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/projectscope/projectscope-backend/pkg/auth"
	"github.com/projectscope/projectscope-backend/pkg/db/models"
)

// Repository persists authentication grants. Expiry is lazy: an expired row is
// deleted the moment a lookup observes it; there is no background sweep.
type Repository struct {
	db  *gorm.DB
	ttl time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewRepository constructs a sessions repo with the configured grant TTL.
func NewRepository(db *gorm.DB, ttl time.Duration) *Repository {
	return &Repository{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create issues a fresh session for the user. Existing sessions are left
// alone; concurrent sessions per user are allowed.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	token, err := pkgauth.NewSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: r.now().Add(r.ttl),
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the raw session row regardless of expiry, or nil when absent.
func (r *Repository) Get(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// GetValid returns the session only while it has not expired. Observing an
// expired session deletes it as a cleanup side effect and reports nil.
func (r *Repository) GetValid(ctx context.Context, token string) (*models.Session, error) {
	session, err := r.Get(ctx, token)
	if err != nil || session == nil {
		return nil, err
	}

	if !session.ExpiresAt.After(r.now()) {
		if err := r.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

// Delete removes the session row; deleting an absent session is not an error.
func (r *Repository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", token).Error
}

// SetNowFunc overrides the clock; test hook only.
func (r *Repository) SetNowFunc(now func() time.Time) {
	r.now = now
}
