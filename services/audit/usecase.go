package audit

import (
	"context"

	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/temanku/services/audit AuditUC

// AuditUC records and serves the audit trail.
type AuditUC interface {
	// Record appends an entry to the trail. It never fails the calling
	// operation: delivery problems are logged and swallowed.
	Record(ctx context.Context, entry *models.AuditLog)
	// List returns entries newest first, with the acting user's email
	// joined in when the actor still exists.
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, error)
}
