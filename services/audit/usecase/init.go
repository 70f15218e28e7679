// Package usecase implements the audit trail business logic.
package usecase

import (
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/audit"
)

// AuditUC implements audit.AuditUC. When a publisher is configured the trail
// is written asynchronously through the queue; without one entries go
// straight to the repository.
type AuditUC struct {
	cfg       *models.Config
	auditRepo audit.AuditRepo
	publisher audit.AuditPublisher // nil when the queue is disabled
}

// NewAuditUC creates the audit usecase. publisher may be nil.
func NewAuditUC(cfg *models.Config, auditRepo audit.AuditRepo, publisher audit.AuditPublisher) *AuditUC {
	return &AuditUC{
		cfg:       cfg,
		auditRepo: auditRepo,
		publisher: publisher,
	}
}
