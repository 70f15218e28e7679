package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallenge represents a pending email verification challenge. Multiple
// rows may exist for one email while a resend is in flight; only the most
// recent one by CreatedAt is authoritative. PendingFullName and
// PendingPassword carry the registration data (password already hashed) until
// the challenge is redeemed.
type OtpChallenge struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	Code            string    `json:"code" db:"code"`
	Attempts        int       `json:"attempts" db:"attempts"`
	PendingFullName string    `json:"pendingFullName" db:"pending_full_name"`
	PendingPassword string    `json:"-" db:"pending_password"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
	ExpiresAt       time.Time `json:"expiresAt" db:"expires_at"`
}

// Expired reports whether the challenge is past its expiry.
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// VerifyOtpRequest represents a request to redeem an OTP code
type VerifyOtpRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OtpCode string `json:"otpCode" validate:"required,len=6,numeric"`
}

// ResendOtpRequest represents a request to re-issue an OTP code
type ResendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}
