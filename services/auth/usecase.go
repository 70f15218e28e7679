package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/temanku/services/auth AuthUC

// AuthUC orchestrates the register → verify → login → refresh → logout
// lifecycle.
type AuthUC interface {
	// Register starts registration: the account does not exist yet, an OTP
	// challenge is issued and mailed. No user row is created here.
	Register(ctx context.Context, req *models.RegisterRequest, ip string) error
	// VerifyRegistration redeems the OTP and creates the durable account.
	VerifyRegistration(ctx context.Context, req *models.VerifyOtpRequest, ip string) (*models.User, error)
	// ResendOtp issues a fresh challenge, superseding the previous one,
	// subject to the resend cooldown and the abuse block.
	ResendOtp(ctx context.Context, req *models.ResendOtpRequest, ip string) error

	Login(ctx context.Context, req *models.LoginRequest, ip string) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string, ip string) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessToken, refreshToken, ip string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest, ip string) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest, ip string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID, accessToken, ip string) error
}
