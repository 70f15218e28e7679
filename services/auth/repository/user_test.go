package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func userColumns() []string {
	return []string{"id", "email", "password", "full_name", "role", "registered_at"}
}

func TestGetUserByEmail_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	userID := uuid.New()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID, "budi@example.com", "hashed", "Budi Santoso", models.RoleUser, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("budi@example.com").
		WillReturnRows(rows)

	// Act
	user, err := repo.GetUserByEmail(context.Background(), "budi@example.com")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	// Act
	user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user := &models.User{
		Email:    "budi@example.com",
		Password: "hashed",
		FullName: "Budi Santoso",
		Role:     models.RoleUser,
	}

	// Act
	err := repo.CreateUser(context.Background(), user)

	// Assert
	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

func TestCreateUser_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{
		Email:    "budi@example.com",
		Password: "hashed",
		FullName: "Budi Santoso",
		Role:     models.RoleUser,
	}

	// Act
	err := repo.CreateUser(context.Background(), user)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID, "ID should be generated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword_UserGone(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := repo.UpdatePassword(context.Background(), userID, "newhash")

	// Assert
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUpdateProfile_Success(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewAuthRepo(&models.Config{}, db)

	userID := uuid.New()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID, "budi@example.com", "hashed", "Budi S.", models.RoleUser, time.Now())

	mock.ExpectQuery("UPDATE users").
		WithArgs("Budi S.", userID).
		WillReturnRows(rows)

	// Act
	user, err := repo.UpdateProfile(context.Background(), userID, "Budi S.")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Budi S.", user.FullName)
}
