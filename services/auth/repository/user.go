package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

const pgUniqueViolation = "23505"

// GetUserByEmail retrieves a user by email, case-insensitively.
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, role, registered_at
		FROM users
		WHERE lower(email) = lower($1)
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, role, registered_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a new user. The unique index on email is the final
// authority on duplicates; a racing insert surfaces as ErrDuplicateEmail.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.RegisteredAt = time.Now()

	query := `
		INSERT INTO users (id, email, password, full_name, role, registered_at)
		VALUES (:id, :email, :password, :full_name, :role, :registered_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return auth.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *AuthRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

// UpdateProfile applies a self-service profile edit and returns the updated row.
func (r *AuthRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*models.User, error) {
	query := `
		UPDATE users SET full_name = $1
		WHERE id = $2
		RETURNING id, email, password, full_name, role, registered_at
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, fullName, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &user, nil
}

// DeleteUser removes a user row. Refresh tokens and data rows cascade at the
// schema level.
func (r *AuthRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
