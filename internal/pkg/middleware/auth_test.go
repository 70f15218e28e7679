package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/jwt"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "test-secret", Expiration: 15, Issuer: "temanku-test"}
}

func runAuthMiddleware(t *testing.T, authHeader string, revocations RevocationChecker) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuthMiddleware(jwtTestConfig(), revocations)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, c, err
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, err := runAuthMiddleware(t, "", &fakeRevocations{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_BadScheme(t *testing.T) {
	rec, _, err := runAuthMiddleware(t, "Basic abc123", &fakeRevocations{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, err := runAuthMiddleware(t, "Bearer not-a-token", &fakeRevocations{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_ValidTokenSetsContext(t *testing.T) {
	// Arrange
	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, models.RoleAdmin, jwtTestConfig())
	assert.NoError(t, err)

	// Act
	rec, c, err := runAuthMiddleware(t, "Bearer "+token, &fakeRevocations{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextUserID))
	assert.Equal(t, models.RoleAdmin, c.Get(ContextUserRole))
	assert.Equal(t, token, c.Get(ContextAccessToken))
}

func TestJWTAuthMiddleware_RevokedToken(t *testing.T) {
	// Arrange
	token, _, err := jwt.GenerateToken(uuid.New(), models.RoleUser, jwtTestConfig())
	assert.NoError(t, err)

	revocations := &fakeRevocations{revoked: map[string]bool{token: true}}

	// Act
	rec, _, err := runAuthMiddleware(t, "Bearer "+token, revocations)

	// Assert: revoked reads exactly like expired
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired")
}

func TestAdminOnlyMiddleware(t *testing.T) {
	e := echo.New()

	run := func(role interface{}) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/logs", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(ContextUserRole, role)
		}

		mw := AdminOnlyMiddleware()
		err := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		assert.NoError(t, err)
		return rec
	}

	assert.Equal(t, http.StatusOK, run(models.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, run(models.RoleUser).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
