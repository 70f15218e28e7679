// Package jwt issues and verifies the short-lived access tokens. Access
// tokens are stateless: validity is signature plus expiry, revocation is the
// middleware's concern.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// TokenInfo is the identity carried by a verified access token.
type TokenInfo struct {
	UserID uuid.UUID
	Role   string
}

// GenerateToken generates a signed access token for the given user.
// It returns the token string and its unix expiry.
func GenerateToken(userID uuid.UUID, role string, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"iat":     now.Unix(),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the embedded
// identity. Any failure yields an error; callers decide how to react.
func ValidateToken(tokenString string, secret string) (*TokenInfo, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token missing user_id claim")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("token user_id is not a valid UUID: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("token missing role claim")
	}

	return &TokenInfo{UserID: userID, Role: role}, nil
}

// RemainingLifetime returns how long the token stays valid, zero when the
// token is unreadable or already expired. Used to bound revocation TTLs.
func RemainingLifetime(tokenString string, secret string) time.Duration {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || token == nil {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 0 {
		return 0
	}
	return remaining
}
