package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/jwt"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/auth"
)

// msgSessionRejected covers every refresh failure: unknown, already used,
// invalidated or expired tokens all read the same from outside.
const msgSessionRejected = "Session is invalid or expired"

const refreshTokenLength = 48

// Refresh rotates the refresh token and issues a new pair. Redemption is a
// single atomic consume, so a replayed token loses even under concurrency.
func (uc *AuthUC) Refresh(ctx context.Context, refreshToken string, ip string) (*models.AuthResponse, error) {
	consumed, err := uc.tokenRepo.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenNotRedeemable) {
			return nil, apperrors.NewAuthentication(msgSessionRejected)
		}
		return nil, apperrors.NewInternal(err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, consumed.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperrors.NewAuthentication(msgSessionRejected)
		}
		return nil, apperrors.NewInternal(err)
	}

	resp, err := uc.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, "/auth/session/refresh", "Session refreshed",
		"refresh_tokens", models.AuditActionUpdate, nil, &user.ID, nil, ip)

	return resp, nil
}

// issueTokenPair mints an access token and persists a fresh refresh token.
func (uc *AuthUC) issueTokenPair(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, expiresAt, err := jwt.GenerateToken(user.ID, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	opaque, err := utils.GenerateRandomString(refreshTokenLength)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	refresh := &models.RefreshToken{
		Token:     opaque,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(uc.cfg.JWT.RefreshExpiration) * time.Hour),
	}
	if err := uc.tokenRepo.CreateRefreshToken(ctx, refresh); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: opaque,
		UserID:       user.ID.String(),
		Role:         user.Role,
		ExpiresAt:    expiresAt,
	}, nil
}
