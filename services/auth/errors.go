package auth

import "errors"

// Sentinel errors returned by the auth repositories. The usecase maps them to
// the user-visible taxonomy; externally most of them collapse into one
// generic message so failure causes cannot be enumerated.
var (
	// ErrUserNotFound indicates no user row for the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the users email unique index rejected an insert.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrChallengeNotFound indicates no live OTP challenge for the email.
	ErrChallengeNotFound = errors.New("otp challenge not found")
	// ErrTokenNotRedeemable indicates a refresh token that is absent, already
	// used, invalidated or expired. One sentinel on purpose: callers must not
	// be able to tell these cases apart.
	ErrTokenNotRedeemable = errors.New("refresh token not redeemable")
)
