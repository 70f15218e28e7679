package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/jwt"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/auth"
)

// msgBadCredentials is uniform for unknown email and wrong password, so a
// login probe cannot tell accounts apart.
const msgBadCredentials = "Invalid email or password"

// Login verifies credentials and opens a session.
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest, ip string) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			uc.recordLoginFailure(ctx, email, nil, ip)
			return nil, apperrors.NewAuthentication(msgBadCredentials)
		}
		return nil, apperrors.NewInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		uc.recordLoginFailure(ctx, email, &user.ID, ip)
		return nil, apperrors.NewAuthentication(msgBadCredentials)
	}

	resp, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, "/auth/login", "User logged in",
		"refresh_tokens", models.AuditActionCreate, nil, &user.ID, nil, ip)

	return resp, nil
}

// recordLoginFailure audits a rejected login. userID is set when the email
// matched an account, nil when it did not; the response stays uniform.
func (uc *AuthUC) recordLoginFailure(ctx context.Context, email string, userID *uuid.UUID, ip string) {
	uc.recordAudit(ctx, "/auth/login", "Login failed",
		"users", models.AuditActionRead, nil, userID,
		models.Metadata{"email": email}, ip)
}

// Logout revokes the presented access token for its remaining lifetime and
// retires the refresh token. Logging out twice is not an error.
func (uc *AuthUC) Logout(ctx context.Context, userID uuid.UUID, accessToken, refreshToken, ip string) error {
	if refreshToken != "" {
		rt, err := uc.tokenRepo.GetRefreshToken(ctx, refreshToken)
		switch {
		case err == nil:
			if rt.UserID != userID {
				return apperrors.NewAuthorization("Refresh token does not belong to this session")
			}
			if err := uc.tokenRepo.InvalidateRefreshToken(ctx, refreshToken); err != nil &&
				!errors.Is(err, auth.ErrTokenNotRedeemable) {
				return apperrors.NewInternal(err)
			}
		case errors.Is(err, auth.ErrTokenNotRedeemable):
			// already gone, nothing to retire
		default:
			return apperrors.NewInternal(err)
		}
	}

	ttl := jwt.RemainingLifetime(accessToken, uc.cfg.JWT.Secret)
	if err := uc.revocations.Revoke(ctx, accessToken, ttl); err != nil {
		return apperrors.NewInternal(err)
	}

	uc.recordAudit(ctx, "/auth/logout", "User logged out",
		"refresh_tokens", models.AuditActionUpdate, nil, &userID, nil, ip)

	return nil
}

// GetProfile returns the account of the logged-in user.
func (uc *AuthUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewInternal(err)
	}
	return user, nil
}

// UpdateProfile edits the self-service profile fields.
func (uc *AuthUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest, ip string) (*models.User, error) {
	if req.FullName == "" {
		return nil, apperrors.NewValidation("Full name is required")
	}

	user, err := uc.userRepo.UpdateProfile(ctx, userID, req.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewInternal(err)
	}

	uc.recordAudit(ctx, "/users/me", "Profile updated",
		"users", models.AuditActionUpdate, &userID, &userID, nil, ip)

	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (uc *AuthUC) ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest, ip string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return apperrors.NewNotFound("User not found")
		}
		return apperrors.NewInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return apperrors.NewAuthentication("Current password is incorrect")
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), uc.cfg.Password.BcryptCost)
	if err != nil {
		return apperrors.NewInternal(err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return apperrors.NewNotFound("User not found")
		}
		return apperrors.NewInternal(err)
	}

	uc.recordAudit(ctx, "/auth/password", "Password changed",
		"users", models.AuditActionUpdate, &userID, &userID, nil, ip)

	return nil
}

// DeleteAccount removes the account. Refresh tokens go with the user row via
// the foreign key; the presented access token is revoked so the session dies
// with the account.
func (uc *AuthUC) DeleteAccount(ctx context.Context, userID uuid.UUID, accessToken, ip string) error {
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return apperrors.NewNotFound("User not found")
		}
		return apperrors.NewInternal(err)
	}

	ttl := jwt.RemainingLifetime(accessToken, uc.cfg.JWT.Secret)
	if err := uc.revocations.Revoke(ctx, accessToken, ttl); err != nil {
		return apperrors.NewInternal(err)
	}

	uc.recordAudit(ctx, "/users/me", "Account deleted",
		"users", models.AuditActionDelete, &userID, &userID, nil, ip)

	return nil
}
