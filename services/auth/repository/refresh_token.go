package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

// CreateRefreshToken persists a freshly issued refresh token.
func (r *AuthRepo) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	token.CreatedAt = time.Now()
	token.Valid = true

	query := `
		INSERT INTO refresh_tokens (token, user_id, valid, created_at, expires_at)
		VALUES (:token, :user_id, :valid, :created_at, :expires_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken looks a token up by its opaque value.
func (r *AuthRepo) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT token, user_id, valid, used_at, created_at, expires_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt models.RefreshToken
	err := r.db.GetContext(ctx, &rt, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrTokenNotRedeemable
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// ConsumeRefreshToken marks a token used in a single statement, so two
// concurrent redemptions of the same token cannot both win. A token that is
// absent, already used, or expired is not redeemable; callers cannot tell
// which from the error, which is intended.
func (r *AuthRepo) ConsumeRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		UPDATE refresh_tokens
		SET valid = false, used_at = now()
		WHERE token = $1 AND valid AND expires_at > now()
		RETURNING token, user_id, valid, used_at, created_at, expires_at
	`

	var rt models.RefreshToken
	err := r.db.GetContext(ctx, &rt, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrTokenNotRedeemable
		}
		return nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}

	return &rt, nil
}

// InvalidateRefreshToken retires a token without redeeming it, as on logout.
// Invalidating an unknown or already retired token reports not redeemable.
func (r *AuthRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET valid = false, used_at = now() WHERE token = $1 AND valid`,
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check invalidation result: %w", err)
	}
	if rows == 0 {
		return auth.ErrTokenNotRedeemable
	}

	return nil
}
