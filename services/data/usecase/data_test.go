package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	auditmocks "github.com/prasetyadi/temanku/services/audit/mocks"
	"github.com/prasetyadi/temanku/services/data"
	"github.com/prasetyadi/temanku/services/data/mocks"
)

// newDataUC builds the usecase with bare mocks; tests asserting on the audit
// trail add their own Record expectations.
func newDataUC(t *testing.T) (*DataUC, *mocks.MockDataRepo, *auditmocks.MockAuditUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDataRepo(ctrl)
	auditUC := auditmocks.NewMockAuditUC(ctrl)

	uc := NewDataUC(&models.Config{}, repo, auditUC)
	return uc, repo, auditUC, ctrl
}

func setupDataUC(t *testing.T) (*DataUC, *mocks.MockDataRepo, *gomock.Controller) {
	uc, repo, auditUC, ctrl := newDataUC(t)
	auditUC.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()
	return uc, repo, ctrl
}

func TestCreateData_Success(t *testing.T) {
	// Arrange
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	repo.EXPECT().
		CreateData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d *models.Data) error {
			assert.Equal(t, ownerID, d.OwnerID)
			assert.Equal(t, "Warung Bu Sri", d.Name)
			return nil
		})

	// Act
	record, err := uc.Create(context.Background(), ownerID, &models.CreateDataRequest{
		Name:    "Warung Bu Sri",
		Address: "Jl. Melati 5",
	}, "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, ownerID, record.OwnerID)
}

func TestCreateData_MissingName(t *testing.T) {
	uc, _, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), uuid.New(), &models.CreateDataRequest{}, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestGetData_NonOwnerIsRejected(t *testing.T) {
	// Arrange
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(&models.Data{ID: recordID, OwnerID: uuid.New()}, nil)

	// Act
	record, err := uc.Get(context.Background(), uuid.New(), recordID, "")

	// Assert
	assert.Nil(t, record)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestGetData_NotFound(t *testing.T) {
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(nil, data.ErrDataNotFound)

	_, err := uc.Get(context.Background(), uuid.New(), recordID, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestGetData_DenialIsAudited(t *testing.T) {
	// Arrange
	uc, repo, auditUC, ctrl := newDataUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(&models.Data{ID: recordID, OwnerID: uuid.New()}, nil)
	auditUC.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *models.AuditLog) {
			assert.Equal(t, "/data/"+recordID.String(), entry.Endpoint)
			assert.Equal(t, "Data record access denied", entry.Message)
			assert.Equal(t, models.AuditActionRead, entry.Action)
			assert.Equal(t, recordID, *entry.RecordID)
			assert.Equal(t, userID, *entry.UserID)
			assert.Equal(t, "203.0.113.7", entry.IP)
		})

	// Act
	_, err := uc.Get(context.Background(), userID, recordID, "203.0.113.7")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestDeleteData_UnknownIDIsAudited(t *testing.T) {
	// Arrange
	uc, repo, auditUC, ctrl := newDataUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(nil, data.ErrDataNotFound)
	auditUC.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *models.AuditLog) {
			assert.Equal(t, "Data record lookup failed", entry.Message)
			assert.Equal(t, models.AuditActionDelete, entry.Action)
			assert.Nil(t, entry.RecordID)
			assert.Equal(t, userID, *entry.UserID)
		})

	// Act
	err := uc.Delete(context.Background(), userID, recordID, "")

	// Assert
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateData_PartialEdit(t *testing.T) {
	// Arrange
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	recordID := uuid.New()
	stored := &models.Data{
		ID:          recordID,
		OwnerID:     ownerID,
		Name:        "Warung Bu Sri",
		Description: "Nasi uduk",
		Address:     "Jl. Melati 5",
	}
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(stored, nil)
	repo.EXPECT().
		UpdateData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d *models.Data) (*models.Data, error) {
			// Only the provided field changes.
			assert.Equal(t, "Warung Bu Sri Baru", d.Name)
			assert.Equal(t, "Nasi uduk", d.Description)
			assert.Equal(t, "Jl. Melati 5", d.Address)
			return d, nil
		})

	newName := "Warung Bu Sri Baru"

	// Act
	updated, err := uc.Update(context.Background(), ownerID, recordID, &models.UpdateDataRequest{
		Name: &newName,
	}, "")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Warung Bu Sri Baru", updated.Name)
}

func TestUpdateData_NonOwnerIsRejected(t *testing.T) {
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(&models.Data{ID: recordID, OwnerID: uuid.New()}, nil)

	newName := "x"
	_, err := uc.Update(context.Background(), uuid.New(), recordID, &models.UpdateDataRequest{Name: &newName}, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestDeleteData_Success(t *testing.T) {
	// Arrange
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	recordID := uuid.New()
	repo.EXPECT().
		GetDataByID(gomock.Any(), recordID).
		Return(&models.Data{ID: recordID, OwnerID: ownerID}, nil)
	repo.EXPECT().
		DeleteData(gomock.Any(), recordID).
		Return(nil)

	// Act
	err := uc.Delete(context.Background(), ownerID, recordID, "")

	// Assert
	assert.NoError(t, err)
}

func TestListData_ClampsLimit(t *testing.T) {
	// Arrange
	uc, repo, ctrl := setupDataUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	repo.EXPECT().
		ListDataByOwner(gomock.Any(), ownerID, defaultListLimit, 0).
		Return([]models.Data{}, nil)
	repo.EXPECT().
		ListDataByOwner(gomock.Any(), ownerID, maxListLimit, 0).
		Return([]models.Data{}, nil)

	// Act + Assert
	_, err := uc.List(context.Background(), ownerID, 0, -5)
	assert.NoError(t, err)
	_, err = uc.List(context.Background(), ownerID, 10000, 0)
	assert.NoError(t, err)
}
