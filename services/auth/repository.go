package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/temanku/services/auth UserRepo,OtpRepo,TokenRepo,RevocationRepo,MailGW

// UserRepo is the credential store: durable users, hashed passwords, roles.
type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// OtpRepo persists OTP challenges. Only the most recent challenge per email
// is authoritative; issuing a new one supersedes the others.
type OtpRepo interface {
	// CreateChallenge deletes any existing challenges for the email and
	// inserts the new one in a single transaction.
	CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error
	GetLatestChallenge(ctx context.Context, email string) (*models.OtpChallenge, error)
	// IncrementAttempts bumps the counter atomically and returns the new value.
	IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error)
	DeleteChallenge(ctx context.Context, id uuid.UUID) error
	// CountExhausted returns how many challenges for the email reached
	// minAttempts since the given time, and the latest update among them.
	CountExhausted(ctx context.Context, email string, minAttempts int, since time.Time) (int, time.Time, error)
}

// TokenRepo persists opaque refresh tokens.
type TokenRepo interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	// ConsumeRefreshToken redeems a token in one atomic statement: it flips
	// valid to false and stamps used_at only when the token is still valid
	// and unexpired, returning the consumed row. A token that is absent,
	// already used or expired yields ErrTokenNotRedeemable.
	ConsumeRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	// InvalidateRefreshToken marks a token invalid without redeeming it (logout).
	InvalidateRefreshToken(ctx context.Context, token string) error
}

// RevocationRepo is the expiring denylist of revoked access tokens.
type RevocationRepo interface {
	Revoke(ctx context.Context, accessToken string, ttl time.Duration) error
	IsRevoked(ctx context.Context, accessToken string) (bool, error)
}

// MailGW delivers transactional email. Failure is a hard failure of the
// operation that needed the mail; there is no silent continue.
type MailGW interface {
	SendOtpEmail(ctx context.Context, to, code string, expiresIn time.Duration) error
}
