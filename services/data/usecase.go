package data

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/temanku/services/data DataUC

// DataUC manages the owner-scoped data records. Every operation takes the
// acting user; a record is only visible to its owner.
type DataUC interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *models.CreateDataRequest, ip string) (*models.Data, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Data, error)
	Get(ctx context.Context, userID, id uuid.UUID, ip string) (*models.Data, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *models.UpdateDataRequest, ip string) (*models.Data, error)
	Delete(ctx context.Context, userID, id uuid.UUID, ip string) error
}
