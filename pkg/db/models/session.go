package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authentication grant. The primary key is the opaque bearer
// token itself: 256 random bits hex-encoded. Sessions reference their user
// weakly; deleting a user does not cascade.
type Session struct {
	ID        string    `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
