package audit

import (
	"context"

	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/temanku/services/audit AuditRepo,AuditPublisher

// AuditRepo persists audit entries.
type AuditRepo interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, limit, offset int) ([]models.AuditLog, error)
}

// AuditPublisher hands an entry to the message queue for asynchronous
// persistence.
type AuditPublisher interface {
	PublishAuditLog(ctx context.Context, entry *models.AuditLog) error
}
