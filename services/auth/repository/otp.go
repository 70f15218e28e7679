package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

// CreateChallenge supersedes live challenges for the email and inserts the
// new one, all in one transaction. Exhausted rows are kept so the abuse
// block window can still see them.
func (r *AuthRepo) CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error {
	challenge.ID = uuid.New()
	now := time.Now()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM otp_challenges WHERE lower(email) = lower($1) AND attempts < $2`,
		challenge.Email, r.cfg.OTP.MaxAttempts,
	)
	if err != nil {
		return fmt.Errorf("failed to supersede challenges: %w", err)
	}

	query := `
		INSERT INTO otp_challenges (
			id, email, code, attempts, pending_full_name, pending_password,
			created_at, updated_at, expires_at
		) VALUES (
			:id, :email, :code, :attempts, :pending_full_name, :pending_password,
			:created_at, :updated_at, :expires_at
		)
	`
	_, err = tx.NamedExecContext(ctx, query, challenge)
	if err != nil {
		return fmt.Errorf("failed to insert challenge: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetLatestChallenge returns the most recent challenge for the email. Older
// rows may still exist transiently; most-recent-by-creation wins.
func (r *AuthRepo) GetLatestChallenge(ctx context.Context, email string) (*models.OtpChallenge, error) {
	query := `
		SELECT id, email, code, attempts, pending_full_name, pending_password,
			created_at, updated_at, expires_at
		FROM otp_challenges
		WHERE lower(email) = lower($1)
		ORDER BY created_at DESC
		LIMIT 1
	`

	var challenge models.OtpChallenge
	err := r.db.GetContext(ctx, &challenge, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}

// IncrementAttempts bumps the attempts counter atomically and returns the
// new value, so concurrent wrong guesses cannot under-count.
func (r *AuthRepo) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE otp_challenges
		SET attempts = attempts + 1, updated_at = now()
		WHERE id = $1
		RETURNING attempts
	`

	var attempts int
	err := r.db.GetContext(ctx, &attempts, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, auth.ErrChallengeNotFound
		}
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}

	return attempts, nil
}

// DeleteChallenge removes a challenge. Deleting an already-deleted challenge
// is not an error.
func (r *AuthRepo) DeleteChallenge(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_challenges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}

// CountExhausted counts challenges for the email that burned through at
// least minAttempts since the given time, returning the latest update among
// them for computing when an abuse block lifts.
func (r *AuthRepo) CountExhausted(ctx context.Context, email string, minAttempts int, since time.Time) (int, time.Time, error) {
	query := `
		SELECT count(*) AS exhausted, coalesce(max(updated_at), to_timestamp(0)) AS latest
		FROM otp_challenges
		WHERE lower(email) = lower($1) AND attempts >= $2 AND updated_at > $3
	`

	var row struct {
		Exhausted int       `db:"exhausted"`
		Latest    time.Time `db:"latest"`
	}
	err := r.db.GetContext(ctx, &row, query, email, minAttempts, since)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to count exhausted challenges: %w", err)
	}

	return row.Exhausted, row.Latest, nil
}
