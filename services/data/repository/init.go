// Package repository persists data records in PostgreSQL.
package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// DataRepo implements data.DataRepo over sqlx.
type DataRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDataRepo creates a new data repository
func NewDataRepo(cfg *models.Config, db *sqlx.DB) *DataRepo {
	return &DataRepo{
		cfg: cfg,
		db:  db,
	}
}
