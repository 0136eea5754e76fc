package auth

import "github.com/projectscope/projectscope-backend/internal/users"

// RegisterRequest is the onboarding payload.
type RegisterRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	FirstName       string  `json:"firstName" validate:"required,min=1"`
	LastName        string  `json:"lastName" validate:"required,min=1"`
	Phone           *string `json:"phone,omitempty"`
	Password        string  `json:"password" validate:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required"`
	Role            string  `json:"role" validate:"required"`
}

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Result is returned by both register and login: the user for the response
// body and the session for the cookie.
type Result struct {
	User         *users.UserDTO
	SessionToken string
}
