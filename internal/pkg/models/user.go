package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. The backend only distinguishes regular users from admins.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"`
	FullName     string    `json:"fullName" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}

// RegisterRequest represents a request to start registration
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"fullName" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UpdateProfileRequest represents a self-service profile edit
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}

// ChangePasswordRequest represents a password change for the logged-in user
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
