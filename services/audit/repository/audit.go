package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// CreateAuditLog appends one entry to the trail.
func (r *AuditRepo) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO audit_logs (
			id, endpoint, message, table_name, action, record_id, user_id,
			meta, ip, created_at
		) VALUES (
			:id, :endpoint, :message, :table_name, :action, :record_id, :user_id,
			:meta, :ip, :created_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

// ListAuditLogs returns entries newest first. The actor email comes from a
// left join so entries survive deletion of the acting user.
func (r *AuditRepo) ListAuditLogs(ctx context.Context, limit, offset int) ([]models.AuditLog, error) {
	query := `
		SELECT a.id, a.endpoint, a.message, a.table_name, a.action,
			a.record_id, a.user_id, a.meta, a.ip, a.created_at, u.email
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	logs := []models.AuditLog{}
	err := r.db.SelectContext(ctx, &logs, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return logs, nil
}
