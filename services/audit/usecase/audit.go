package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Record appends an entry to the trail. A broken queue or database never
// fails the business operation that produced the entry; the failure is
// logged and the entry is dropped.
func (uc *AuditUC) Record(ctx context.Context, entry *models.AuditLog) {
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	var err error
	if uc.publisher != nil {
		err = uc.publisher.PublishAuditLog(ctx, entry)
	} else {
		err = uc.auditRepo.CreateAuditLog(ctx, entry)
	}

	if err != nil {
		logger.Error("Failed to record audit entry",
			logger.Err(err),
			logger.String("endpoint", entry.Endpoint),
			logger.String("action", entry.Action),
		)
	}
}

// Persist writes a queued entry to the database. It is the consumer-side
// counterpart of Record.
func (uc *AuditUC) Persist(ctx context.Context, entry *models.AuditLog) error {
	return uc.auditRepo.CreateAuditLog(ctx, entry)
}

// List returns entries newest first. Limits are clamped so a single request
// cannot drag the whole trail over the wire.
func (uc *AuditUC) List(ctx context.Context, limit, offset int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return uc.auditRepo.ListAuditLogs(ctx, limit, offset)
}
