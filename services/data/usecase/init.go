// Package usecase implements the owner-scoped data record logic.
package usecase

import (
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/audit"
	"github.com/prasetyadi/temanku/services/data"
)

// DataUC implements data.DataUC.
type DataUC struct {
	cfg      *models.Config
	dataRepo data.DataRepo
	auditUC  audit.AuditUC
}

// NewDataUC creates the data usecase.
func NewDataUC(cfg *models.Config, dataRepo data.DataRepo, auditUC audit.AuditUC) *DataUC {
	return &DataUC{
		cfg:      cfg,
		dataRepo: dataRepo,
		auditUC:  auditUC,
	}
}
