package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// AuthRepo implements the auth service's Postgres-backed repositories:
// credential store, OTP challenges and refresh tokens.
type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
