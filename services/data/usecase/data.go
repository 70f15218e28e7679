package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/data"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Create stores a new record for the owner.
func (uc *DataUC) Create(ctx context.Context, ownerID uuid.UUID, req *models.CreateDataRequest, ip string) (*models.Data, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("Name is required")
	}

	record := &models.Data{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		PhotoLink:   req.PhotoLink,
	}
	if err := uc.dataRepo.CreateData(ctx, record); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	uc.auditUC.Record(ctx, &models.AuditLog{
		Endpoint:  "/data",
		Message:   "Data record created",
		TableName: "data",
		Action:    models.AuditActionCreate,
		RecordID:  &record.ID,
		UserID:    &ownerID,
		IP:        ip,
	})

	return record, nil
}

// List returns the acting user's records.
func (uc *DataUC) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Data, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := uc.dataRepo.ListDataByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return records, nil
}

// Get returns one record after the ownership check.
func (uc *DataUC) Get(ctx context.Context, userID, id uuid.UUID, ip string) (*models.Data, error) {
	return uc.getOwned(ctx, userID, id, models.AuditActionRead, ip)
}

// Update applies a partial edit to an owned record.
func (uc *DataUC) Update(ctx context.Context, userID, id uuid.UUID, req *models.UpdateDataRequest, ip string) (*models.Data, error) {
	record, err := uc.getOwned(ctx, userID, id, models.AuditActionUpdate, ip)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidation("Name cannot be empty")
		}
		record.Name = *req.Name
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Address != nil {
		record.Address = *req.Address
	}
	if req.PhotoLink != nil {
		record.PhotoLink = *req.PhotoLink
	}

	updated, err := uc.dataRepo.UpdateData(ctx, record)
	if err != nil {
		if errors.Is(err, data.ErrDataNotFound) {
			return nil, apperrors.NewNotFound("Data record not found")
		}
		return nil, apperrors.NewInternal(err)
	}

	uc.auditUC.Record(ctx, &models.AuditLog{
		Endpoint:  "/data/" + id.String(),
		Message:   "Data record updated",
		TableName: "data",
		Action:    models.AuditActionUpdate,
		RecordID:  &id,
		UserID:    &userID,
		IP:        ip,
	})

	return updated, nil
}

// Delete removes an owned record.
func (uc *DataUC) Delete(ctx context.Context, userID, id uuid.UUID, ip string) error {
	if _, err := uc.getOwned(ctx, userID, id, models.AuditActionDelete, ip); err != nil {
		return err
	}

	if err := uc.dataRepo.DeleteData(ctx, id); err != nil {
		if errors.Is(err, data.ErrDataNotFound) {
			return apperrors.NewNotFound("Data record not found")
		}
		return apperrors.NewInternal(err)
	}

	uc.auditUC.Record(ctx, &models.AuditLog{
		Endpoint:  "/data/" + id.String(),
		Message:   "Data record deleted",
		TableName: "data",
		Action:    models.AuditActionDelete,
		RecordID:  &id,
		UserID:    &userID,
		IP:        ip,
	})

	return nil
}

// getOwned fetches a record and enforces that the acting user owns it.
// Lookups on unknown ids and ownership mismatches land in the audit trail.
func (uc *DataUC) getOwned(ctx context.Context, userID, id uuid.UUID, action, ip string) (*models.Data, error) {
	record, err := uc.dataRepo.GetDataByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrDataNotFound) {
			uc.auditUC.Record(ctx, &models.AuditLog{
				Endpoint:  "/data/" + id.String(),
				Message:   "Data record lookup failed",
				TableName: "data",
				Action:    action,
				UserID:    &userID,
				IP:        ip,
			})
			return nil, apperrors.NewNotFound("Data record not found")
		}
		return nil, apperrors.NewInternal(err)
	}
	if record.OwnerID != userID {
		uc.auditUC.Record(ctx, &models.AuditLog{
			Endpoint:  "/data/" + id.String(),
			Message:   "Data record access denied",
			TableName: "data",
			Action:    action,
			RecordID:  &id,
			UserID:    &userID,
			IP:        ip,
		})
		return nil, apperrors.NewAuthorization("You do not have access to this record")
	}
	return record, nil
}
