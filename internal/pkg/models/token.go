package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a persisted opaque refresh token. A token is
// redeemable exactly once: rotation flips Valid to false and stamps UsedAt in
// the same statement that authorizes the new pair.
type RefreshToken struct {
	Token     string     `json:"-" db:"token"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	Valid     bool       `json:"valid" db:"valid"`
	UsedAt    *time.Time `json:"usedAt,omitempty" db:"used_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time  `json:"expiresAt" db:"expires_at"`
}

// Expired reports whether the refresh token is past its expiry.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// LoginRequest represents a password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token rotation request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest carries the refresh token to invalidate alongside the bearer
// access token being revoked.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	ExpiresAt    int64  `json:"expiresAt"`
}
