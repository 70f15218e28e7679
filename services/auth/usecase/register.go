package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/auth"
)

// msgOtpRejected is the single message for every terminal OTP failure:
// unknown email, expired challenge, exhausted attempts. Collapsing them keeps
// a caller from probing which case applied.
const msgOtpRejected = "Verification code is invalid or expired"

const minPasswordLength = 8

// Register starts registration for a new account. No user row is created
// here; the registration data rides on the OTP challenge until it is
// redeemed.
func (uc *AuthUC) Register(ctx context.Context, req *models.RegisterRequest, ip string) error {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return apperrors.NewValidation("Invalid email address")
	}
	if req.FullName == "" {
		return apperrors.NewValidation("Full name is required")
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.NewValidation("Password confirmation does not match")
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	_, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return apperrors.NewConflict("Email is already registered")
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return apperrors.NewInternal(err)
	}

	// Re-registering while a code is still fresh rides the same cooldown as
	// an explicit resend; otherwise register would be a cooldown bypass.
	latest, err := uc.otpRepo.GetLatestChallenge(ctx, email)
	switch {
	case err == nil:
		if elapsed := time.Since(latest.CreatedAt); elapsed < time.Duration(uc.cfg.OTP.ResendCooldown)*time.Second {
			return apperrors.NewConflict("A code was sent recently. Please wait before requesting another")
		}
	case errors.Is(err, auth.ErrChallengeNotFound):
	default:
		return apperrors.NewInternal(err)
	}

	if err := uc.checkChallengeBlock(ctx, email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.cfg.Password.BcryptCost)
	if err != nil {
		return apperrors.NewInternal(err)
	}

	challenge, err := uc.issueChallenge(ctx, email, req.FullName, string(hash))
	if err != nil {
		return err
	}

	uc.recordAudit(ctx, "/auth/register", "Registration started",
		"otp_challenges", models.AuditActionCreate, &challenge.ID, nil,
		models.Metadata{"email": email}, ip)

	return nil
}

// ResendOtp re-issues the challenge for a pending registration, carrying the
// pending account data over to the new code.
func (uc *AuthUC) ResendOtp(ctx context.Context, req *models.ResendOtpRequest, ip string) error {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return apperrors.NewValidation("Invalid email address")
	}

	challenge, err := uc.otpRepo.GetLatestChallenge(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrChallengeNotFound) {
			return apperrors.NewNotFound("No pending registration for this email")
		}
		return apperrors.NewInternal(err)
	}

	if elapsed := time.Since(challenge.CreatedAt); elapsed < time.Duration(uc.cfg.OTP.ResendCooldown)*time.Second {
		return apperrors.NewConflict("A code was sent recently. Please wait before requesting another")
	}

	if err := uc.checkChallengeBlock(ctx, email); err != nil {
		return err
	}

	fresh, err := uc.issueChallenge(ctx, email, challenge.PendingFullName, challenge.PendingPassword)
	if err != nil {
		return err
	}

	uc.recordAudit(ctx, "/auth/register/resend-otp", "Verification code re-issued",
		"otp_challenges", models.AuditActionCreate, &fresh.ID, nil,
		models.Metadata{"email": email}, ip)

	return nil
}

// VerifyRegistration redeems the OTP and creates the account. Wrong codes
// below the attempt ceiling get a distinct message; everything terminal
// collapses into msgOtpRejected.
func (uc *AuthUC) VerifyRegistration(ctx context.Context, req *models.VerifyOtpRequest, ip string) (*models.User, error) {
	email := utils.NormalizeEmail(req.Email)

	challenge, err := uc.otpRepo.GetLatestChallenge(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrChallengeNotFound) {
			uc.recordVerifyFailure(ctx, email, ip)
			return nil, apperrors.NewValidation(msgOtpRejected)
		}
		return nil, apperrors.NewInternal(err)
	}

	if challenge.Expired(time.Now()) {
		// Best effort: the rejection stands whether or not the row goes.
		_ = uc.otpRepo.DeleteChallenge(ctx, challenge.ID)
		uc.recordVerifyFailure(ctx, email, ip)
		return nil, apperrors.NewValidation(msgOtpRejected)
	}
	if challenge.Attempts >= uc.cfg.OTP.MaxAttempts {
		uc.recordVerifyFailure(ctx, email, ip)
		return nil, apperrors.NewValidation(msgOtpRejected)
	}

	if req.OtpCode != challenge.Code {
		attempts, incErr := uc.otpRepo.IncrementAttempts(ctx, challenge.ID)
		if incErr != nil && !errors.Is(incErr, auth.ErrChallengeNotFound) {
			return nil, apperrors.NewInternal(incErr)
		}
		uc.recordVerifyFailure(ctx, email, ip)
		if attempts >= uc.cfg.OTP.MaxAttempts {
			return nil, apperrors.NewValidation(msgOtpRejected)
		}
		return nil, apperrors.NewValidation("Incorrect verification code")
	}

	user := &models.User{
		Email:    email,
		Password: challenge.PendingPassword,
		FullName: challenge.PendingFullName,
		Role:     models.RoleUser,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("Email is already registered")
		}
		return nil, apperrors.NewInternal(err)
	}

	if err := uc.otpRepo.DeleteChallenge(ctx, challenge.ID); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	uc.recordAudit(ctx, "/auth/register/verify", "Account created",
		"users", models.AuditActionCreate, &user.ID, &user.ID, nil, ip)

	return user, nil
}

// issueChallenge generates a fresh code, persists the challenge superseding
// the previous ones and mails the code. Mail failure fails the whole
// operation; a challenge nobody can redeem is worse than an error.
func (uc *AuthUC) issueChallenge(ctx context.Context, email, fullName, passwordHash string) (*models.OtpChallenge, error) {
	code, err := generateOtpCode()
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	expiration := time.Duration(uc.cfg.OTP.Expiration) * time.Minute
	challenge := &models.OtpChallenge{
		Email:           email,
		Code:            code,
		PendingFullName: fullName,
		PendingPassword: passwordHash,
		ExpiresAt:       time.Now().Add(expiration),
	}
	if err := uc.otpRepo.CreateChallenge(ctx, challenge); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if err := uc.mailGW.SendOtpEmail(ctx, email, code, expiration); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return challenge, nil
}

// recordVerifyFailure audits a rejected verification attempt. The external
// message stays collapsed; the trail keeps the email for abuse review.
func (uc *AuthUC) recordVerifyFailure(ctx context.Context, email, ip string) {
	uc.recordAudit(ctx, "/auth/register/verify", "Verification code rejected",
		"otp_challenges", models.AuditActionRead, nil, nil,
		models.Metadata{"email": email}, ip)
}

// checkChallengeBlock rejects issuing when the email exhausted too many
// challenges inside the block window.
func (uc *AuthUC) checkChallengeBlock(ctx context.Context, email string) error {
	since := time.Now().Add(-time.Duration(uc.cfg.OTP.BlockDuration) * time.Minute)
	exhausted, _, err := uc.otpRepo.CountExhausted(ctx, email, uc.cfg.OTP.MaxAttempts, since)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if exhausted >= uc.cfg.OTP.MaxFailedChallenge {
		return apperrors.NewRateLimit("Too many failed verification attempts. Please try again later")
	}
	return nil
}

// generateOtpCode draws a uniform six digit code from crypto/rand.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// validatePassword enforces the minimum password policy: length plus at
// least one letter and one digit.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.NewValidation(fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.NewValidation("Password must contain at least one letter and one digit")
	}
	return nil
}
