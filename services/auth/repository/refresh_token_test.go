package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

func tokenColumns() []string {
	return []string{"token", "user_id", "valid", "used_at", "created_at", "expires_at"}
}

func TestConsumeRefreshToken_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	userID := uuid.New()
	usedAt := time.Now()
	rows := sqlmock.NewRows(tokenColumns()).
		AddRow("opaque-token", userID, false, usedAt, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	mock.ExpectQuery("UPDATE refresh_tokens").
		WithArgs("opaque-token").
		WillReturnRows(rows)

	// Act
	consumed, err := repo.ConsumeRefreshToken(context.Background(), "opaque-token")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, consumed.UserID)
	assert.False(t, consumed.Valid)
	assert.NotNil(t, consumed.UsedAt)
}

func TestConsumeRefreshToken_NotRedeemable(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	// The atomic consume matches no row whether the token is absent, used
	// or expired; all three look identical here.
	mock.ExpectQuery("UPDATE refresh_tokens").
		WithArgs("burned-token").
		WillReturnRows(sqlmock.NewRows(tokenColumns()))

	// Act
	consumed, err := repo.ConsumeRefreshToken(context.Background(), "burned-token")

	// Assert
	assert.Nil(t, consumed)
	assert.ErrorIs(t, err, auth.ErrTokenNotRedeemable)
}

func TestCreateRefreshToken(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(0, 1))

	token := &models.RefreshToken{
		Token:     "opaque-token",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(168 * time.Hour),
	}

	// Act
	err := repo.CreateRefreshToken(context.Background(), token)

	// Assert
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateRefreshToken_AlreadyRetired(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	mock.ExpectExec("UPDATE refresh_tokens").
		WithArgs("gone-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := repo.InvalidateRefreshToken(context.Background(), "gone-token")

	// Assert
	assert.ErrorIs(t, err, auth.ErrTokenNotRedeemable)
}
