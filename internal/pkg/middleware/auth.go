package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prasetyadi/temanku/internal/pkg/jwt"
	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
)

// RevocationChecker answers whether an access token has been revoked before
// its natural expiry.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, accessToken string) (bool, error)
}

// Context keys set by the auth middleware.
const (
	ContextUserID      = "user_id"
	ContextUserRole    = "user_role"
	ContextAccessToken = "access_token"
)

// JWTAuthMiddleware authenticates requests: bearer extraction, signature and
// expiry verification, then the revocation denylist. All failures collapse to
// one uniform 401.
func JWTAuthMiddleware(config models.JWTConfig, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "You need to sign in to access this resource")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}
			tokenString := parts[1]

			info, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Your token is invalid or expired")
			}

			revoked, err := revocations.IsRevoked(c.Request().Context(), tokenString)
			if err != nil {
				logger.Error("Revocation cache lookup failed",
					logger.Err(err),
					logger.String("user_id", info.UserID.String()),
				)
				return utils.InternalServerErrorResponse(c, "")
			}
			if revoked {
				return utils.UnauthorizedResponse(c, "Your token is invalid or expired")
			}

			c.Set(ContextUserID, info.UserID)
			c.Set(ContextUserRole, info.Role)
			c.Set(ContextAccessToken, tokenString)

			return next(c)
		}
	}
}

// AdminOnlyMiddleware rejects requests whose authenticated role is not ADMIN.
// Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextUserRole).(string)
			if !ok || role != models.RoleAdmin {
				return utils.ForbiddenResponse(c, "You are not authorized to access this resource")
			}
			return next(c)
		}
	}
}
