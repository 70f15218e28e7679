package data

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/temanku/services/data DataRepo

// DataRepo persists the user-owned data records.
type DataRepo interface {
	CreateData(ctx context.Context, record *models.Data) error
	GetDataByID(ctx context.Context, id uuid.UUID) (*models.Data, error)
	ListDataByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Data, error)
	// UpdateData writes the mutable fields of the record and returns the
	// stored row.
	UpdateData(ctx context.Context, record *models.Data) (*models.Data, error)
	DeleteData(ctx context.Context, id uuid.UUID) error
}
