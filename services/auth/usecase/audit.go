package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// recordAudit emits one audit entry. Recording never fails the operation.
func (uc *AuthUC) recordAudit(ctx context.Context, endpoint, message, tableName, action string, recordID, userID *uuid.UUID, meta models.Metadata, ip string) {
	uc.auditUC.Record(ctx, &models.AuditLog{
		Endpoint:  endpoint,
		Message:   message,
		TableName: tableName,
		Action:    action,
		RecordID:  recordID,
		UserID:    userID,
		Meta:      meta,
		IP:        ip,
	})
}
