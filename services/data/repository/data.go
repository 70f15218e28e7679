package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/data"
)

// CreateData inserts a record and fills in the generated fields.
func (r *DataRepo) CreateData(ctx context.Context, record *models.Data) error {
	record.ID = uuid.New()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `
		INSERT INTO data (id, owner_id, name, description, address, photo_link, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :description, :address, :photo_link, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("failed to insert data record: %w", err)
	}

	return nil
}

// GetDataByID fetches one record regardless of owner; visibility is the
// usecase's call.
func (r *DataRepo) GetDataByID(ctx context.Context, id uuid.UUID) (*models.Data, error) {
	query := `
		SELECT id, owner_id, name, description, address, photo_link, created_at, updated_at
		FROM data
		WHERE id = $1
	`

	var record models.Data
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrDataNotFound
		}
		return nil, fmt.Errorf("failed to get data record: %w", err)
	}

	return &record, nil
}

// ListDataByOwner returns the owner's records newest first.
func (r *DataRepo) ListDataByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Data, error) {
	query := `
		SELECT id, owner_id, name, description, address, photo_link, created_at, updated_at
		FROM data
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.Data{}
	err := r.db.SelectContext(ctx, &records, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list data records: %w", err)
	}

	return records, nil
}

// UpdateData writes the mutable fields and returns the stored row.
func (r *DataRepo) UpdateData(ctx context.Context, record *models.Data) (*models.Data, error) {
	query := `
		UPDATE data
		SET name = $1, description = $2, address = $3, photo_link = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, owner_id, name, description, address, photo_link, created_at, updated_at
	`

	var updated models.Data
	err := r.db.GetContext(ctx, &updated, query,
		record.Name, record.Description, record.Address, record.PhotoLink, record.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrDataNotFound
		}
		return nil, fmt.Errorf("failed to update data record: %w", err)
	}

	return &updated, nil
}

// DeleteData removes a record.
func (r *DataRepo) DeleteData(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM data WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete data record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return data.ErrDataNotFound
	}

	return nil
}
