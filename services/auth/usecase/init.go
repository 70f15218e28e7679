// Package usecase implements the registration, session and profile flows.
package usecase

import (
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/audit"
	"github.com/prasetyadi/temanku/services/auth"
)

// AuthUC implements auth.AuthUC.
type AuthUC struct {
	cfg         *models.Config
	userRepo    auth.UserRepo
	otpRepo     auth.OtpRepo
	tokenRepo   auth.TokenRepo
	revocations auth.RevocationRepo
	mailGW      auth.MailGW
	auditUC     audit.AuditUC
}

// NewAuthUC creates the auth usecase with its collaborators.
func NewAuthUC(
	cfg *models.Config,
	userRepo auth.UserRepo,
	otpRepo auth.OtpRepo,
	tokenRepo auth.TokenRepo,
	revocations auth.RevocationRepo,
	mailGW auth.MailGW,
	auditUC audit.AuditUC,
) *AuthUC {
	return &AuthUC{
		cfg:         cfg,
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		tokenRepo:   tokenRepo,
		revocations: revocations,
		mailGW:      mailGW,
		auditUC:     auditUC,
	}
}
