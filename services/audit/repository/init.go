// Package repository persists the audit trail in PostgreSQL.
package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// AuditRepo implements audit.AuditRepo over sqlx.
type AuditRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuditRepo creates a new audit repository
func NewAuditRepo(cfg *models.Config, db *sqlx.DB) *AuditRepo {
	return &AuditRepo{
		cfg: cfg,
		db:  db,
	}
}
