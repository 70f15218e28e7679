// Package nsq consumes queued audit entries and persists them.
package nsq

import (
	"context"

	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	pkgnsq "github.com/prasetyadi/temanku/internal/pkg/nsq"
	"github.com/prasetyadi/temanku/services/audit"
)

// AuditChannel is the consumer channel name for the audit topic.
const AuditChannel = "audit-writer"

// Handler persists audit entries arriving on the queue.
type Handler struct {
	auditRepo audit.AuditRepo
}

func NewHandler(auditRepo audit.AuditRepo) *Handler {
	return &Handler{auditRepo: auditRepo}
}

// HandleMessage decodes one queued entry and writes it. A malformed payload
// is dropped rather than requeued forever; a database failure requeues.
func (h *Handler) HandleMessage(body []byte) error {
	var entry models.AuditLog
	if err := pkgnsq.UnmarshalMessage(body, &entry); err != nil {
		logger.Error("Dropping malformed audit message", logger.Err(err))
		return nil
	}

	if err := h.auditRepo.CreateAuditLog(context.Background(), &entry); err != nil {
		return err
	}

	return nil
}
