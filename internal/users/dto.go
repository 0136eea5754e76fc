package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/projectscope/projectscope-backend/pkg/db/models"
	"github.com/projectscope/projectscope-backend/pkg/enums"
)

// UserDTO is the transport shape; it never carries the credential hash.
type UserDTO struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Phone              *string    `json:"phone,omitempty"`
	SelectedRole       enums.Role `json:"selectedRole"`
	EmailNotifications bool       `json:"emailNotifications"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              *string
	SelectedRole       enums.Role
	EmailNotifications *bool
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		SelectedRole:       u.SelectedRole,
		EmailNotifications: u.EmailNotifications,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	emailNotifications := true
	if c.EmailNotifications != nil {
		emailNotifications = *c.EmailNotifications
	}

	return &models.User{
		Email:              c.Email,
		PasswordHash:       c.PasswordHash,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Phone:              c.Phone,
		SelectedRole:       c.SelectedRole,
		EmailNotifications: emailNotifications,
	}
}
