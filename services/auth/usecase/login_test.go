package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
)

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{
			ID:       userID,
			Email:    "budi@example.com",
			Password: hashPassword(t, "rahasia123"),
			Role:     models.RoleUser,
		}, nil)
	m.tokenRepo.EXPECT().
		CreateRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, rt *models.RefreshToken) error {
			assert.Equal(t, userID, rt.UserID)
			assert.NotEmpty(t, rt.Token)
			assert.True(t, rt.ExpiresAt.After(time.Now().Add(167*time.Hour)))
			return nil
		})

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Budi@Example.com",
		Password: "rahasia123",
	}, "203.0.113.7")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, models.RoleUser, resp.Role)
}

func TestLogin_FailedAttemptIsAudited(t *testing.T) {
	// Arrange
	uc, m, ctrl := newAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{
			ID:       userID,
			Email:    "budi@example.com",
			Password: hashPassword(t, "rahasia123"),
		}, nil)
	m.auditUC.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *models.AuditLog) {
			assert.Equal(t, "/auth/login", entry.Endpoint)
			assert.Equal(t, "Login failed", entry.Message)
			assert.Equal(t, userID, *entry.UserID)
			assert.Equal(t, "budi@example.com", entry.Meta["email"])
			assert.Equal(t, "203.0.113.7", entry.IP)
		})

	// Act
	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email: "budi@example.com", Password: "wrongpass1",
	}, "203.0.113.7")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestLogin_UnknownEmailIsAudited(t *testing.T) {
	// Arrange
	uc, m, ctrl := newAuthUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)
	m.auditUC.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *models.AuditLog) {
			assert.Equal(t, "Login failed", entry.Message)
			assert.Nil(t, entry.UserID)
			assert.Equal(t, "nobody@example.com", entry.Meta["email"])
		})

	// Act
	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	}, "")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestLogin_BadCredentialsAreUniform(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)
	m.userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{Password: hashPassword(t, "rahasia123")}, nil)

	// Act
	_, unknownErr := uc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	}, "")
	_, wrongErr := uc.Login(context.Background(), &models.LoginRequest{
		Email: "budi@example.com", Password: "wrongpass1",
	}, "")

	// Assert: unknown email and wrong password are indistinguishable
	assert.EqualError(t, unknownErr, msgBadCredentials)
	assert.EqualError(t, wrongErr, msgBadCredentials)
	assert.True(t, apperrors.IsKind(unknownErr, apperrors.KindAuthentication))
	assert.True(t, apperrors.IsKind(wrongErr, apperrors.KindAuthentication))
}

func TestLogout_RevokesAndRetires(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.tokenRepo.EXPECT().
		GetRefreshToken(gomock.Any(), "opaque-token").
		Return(&models.RefreshToken{Token: "opaque-token", UserID: userID, Valid: true}, nil)
	m.tokenRepo.EXPECT().
		InvalidateRefreshToken(gomock.Any(), "opaque-token").
		Return(nil)
	m.revocations.EXPECT().
		Revoke(gomock.Any(), "access-token", gomock.Any()).
		Return(nil)

	// Act
	err := uc.Logout(context.Background(), userID, "access-token", "opaque-token", "")

	// Assert
	assert.NoError(t, err)
}

func TestLogout_ForeignRefreshToken(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	m.tokenRepo.EXPECT().
		GetRefreshToken(gomock.Any(), "opaque-token").
		Return(&models.RefreshToken{Token: "opaque-token", UserID: uuid.New(), Valid: true}, nil)

	// Act
	err := uc.Logout(context.Background(), uuid.New(), "access-token", "opaque-token", "")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestLogout_Idempotent(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	m.tokenRepo.EXPECT().
		GetRefreshToken(gomock.Any(), "gone-token").
		Return(nil, auth.ErrTokenNotRedeemable)
	m.revocations.EXPECT().
		Revoke(gomock.Any(), "access-token", gomock.Any()).
		Return(nil)

	// Act
	err := uc.Logout(context.Background(), uuid.New(), "access-token", "gone-token", "")

	// Assert
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Password: hashPassword(t, "rahasia123")}, nil)

	// Act
	err := uc.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		OldPassword: "wrongpass1",
		NewPassword: "barurahasia1",
	}, "")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestChangePassword_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Password: hashPassword(t, "rahasia123")}, nil)
	m.userRepo.EXPECT().
		UpdatePassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("barurahasia1")))
			return nil
		})

	// Act
	err := uc.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		OldPassword: "rahasia123",
		NewPassword: "barurahasia1",
	}, "")

	// Assert
	assert.NoError(t, err)
}

func TestDeleteAccount_RevokesSession(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		DeleteUser(gomock.Any(), userID).
		Return(nil)
	m.revocations.EXPECT().
		Revoke(gomock.Any(), "access-token", gomock.Any()).
		Return(nil)

	// Act
	err := uc.DeleteAccount(context.Background(), userID, "access-token", "")

	// Assert
	assert.NoError(t, err)
}

func TestGetProfile_NotFound(t *testing.T) {
	// Arrange
	uc, m, ctrl := setupAuthUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, auth.ErrUserNotFound)

	// Act
	_, err := uc.GetProfile(context.Background(), userID)

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
