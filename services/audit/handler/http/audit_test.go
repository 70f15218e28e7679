package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/pkg/server"
	"github.com/prasetyadi/temanku/services/audit/mocks"
)

func doRequest(e *echo.Echo, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestListLogsHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	actorEmail := "budi@example.com"
	mockUC := mocks.NewMockAuditUC(ctrl)
	mockUC.EXPECT().
		List(gomock.Any(), 10, 5).
		Return([]models.AuditLog{{
			ID:         uuid.New(),
			Action:     models.AuditActionCreate,
			UserID:     &actorID,
			ActorEmail: &actorEmail,
		}}, nil)

	h := NewAuditHandler(mockUC)
	e := echo.New()
	e.HTTPErrorHandler = server.HTTPErrorHandler

	// Act
	rec := doRequest(e, h.ListLogs, "/logs?limit=10&offset=5")

	// Assert
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Audit logs retrieved", response["message"])
	assert.Contains(t, rec.Body.String(), "budi@example.com")
}

func TestListLogsHandler_RepositoryError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuditUC(ctrl)
	mockUC.EXPECT().
		List(gomock.Any(), 0, 0).
		Return(nil, apperrors.NewInternal(errors.New("connection refused")))

	h := NewAuditHandler(mockUC)
	e := echo.New()
	e.HTTPErrorHandler = server.HTTPErrorHandler

	// Act
	rec := doRequest(e, h.ListLogs, "/logs")

	// Assert
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}
