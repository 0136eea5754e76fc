package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/projectscope/projectscope-backend/pkg/enums"
)

// User represents the canonical account entity. PasswordHash never leaves
// the persistence layer.
type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email              string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash       string     `gorm:"column:password_hash;not null"`
	FirstName          string     `gorm:"column:first_name;not null"`
	LastName           string     `gorm:"column:last_name;not null"`
	Phone              *string    `gorm:"column:phone"`
	SelectedRole       enums.Role `gorm:"column:selected_role;type:text;not null"`
	EmailNotifications bool       `gorm:"column:email_notifications;not null;default:true"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
