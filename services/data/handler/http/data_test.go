package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/pkg/server"
	"github.com/prasetyadi/temanku/internal/pkg/validator"
	"github.com/prasetyadi/temanku/services/data/mocks"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.NewRequestValidator()
	e.HTTPErrorHandler = server.HTTPErrorHandler
	return e
}

func doRequest(e *echo.Echo, h echo.HandlerFunc, method, target, body string, setup func(echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCreateHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockUC := mocks.NewMockDataUC(ctrl)
	mockUC.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, owner uuid.UUID, req *models.CreateDataRequest, _ string) (*models.Data, error) {
			assert.Equal(t, "Kantor Pusat", req.Name)
			return &models.Data{ID: uuid.New(), OwnerID: owner, Name: req.Name}, nil
		})

	h := NewDataHandler(mockUC)
	e := newTestEcho()

	body := `{"name":"Kantor Pusat","address":"Jl. Sudirman 10"}`

	// Act
	rec := doRequest(e, h.Create, nethttp.MethodPost, "/data", body, func(c echo.Context) {
		c.Set(middleware.ContextUserID, ownerID)
	})

	// Assert
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Data record created", response["message"])
}

func TestCreateHandler_MissingName(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDataUC(ctrl)
	h := NewDataHandler(mockUC)
	e := newTestEcho()

	body := `{"address":"Jl. Sudirman 10"}`

	// Act
	rec := doRequest(e, h.Create, nethttp.MethodPost, "/data", body, func(c echo.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
	})

	// Assert
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestListHandler_PassesPagination(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	mockUC := mocks.NewMockDataUC(ctrl)
	mockUC.EXPECT().
		List(gomock.Any(), ownerID, 10, 20).
		Return([]models.Data{{ID: uuid.New(), OwnerID: ownerID, Name: "Gudang"}}, nil)

	h := NewDataHandler(mockUC)
	e := newTestEcho()

	// Act
	rec := doRequest(e, h.List, nethttp.MethodGet, "/data?limit=10&offset=20", "", func(c echo.Context) {
		c.Set(middleware.ContextUserID, ownerID)
	})

	// Assert
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gudang")
}

func TestGetHandler_InvalidID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDataUC(ctrl)
	h := NewDataHandler(mockUC)
	e := newTestEcho()

	// Act
	rec := doRequest(e, h.Get, nethttp.MethodGet, "/data/not-a-uuid", "", func(c echo.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")
	})

	// Assert
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid record id")
}

func TestGetHandler_Forbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	mockUC := mocks.NewMockDataUC(ctrl)
	mockUC.EXPECT().
		Get(gomock.Any(), gomock.Any(), recordID, gomock.Any()).
		Return(nil, apperrors.NewAuthorization("You do not have access to this record"))

	h := NewDataHandler(mockUC)
	e := newTestEcho()

	// Act
	rec := doRequest(e, h.Get, nethttp.MethodGet, "/data/"+recordID.String(), "", func(c echo.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.SetParamNames("id")
		c.SetParamValues(recordID.String())
	})

	// Assert
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestUpdateHandler_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	recordID := uuid.New()
	mockUC := mocks.NewMockDataUC(ctrl)
	mockUC.EXPECT().
		Update(gomock.Any(), ownerID, recordID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _ uuid.UUID, req *models.UpdateDataRequest, _ string) (*models.Data, error) {
			assert.NotNil(t, req.Description)
			assert.Nil(t, req.Name)
			return &models.Data{ID: recordID, OwnerID: ownerID, Name: "Gudang", Description: *req.Description}, nil
		})

	h := NewDataHandler(mockUC)
	e := newTestEcho()

	body := `{"description":"Gudang cadangan"}`

	// Act
	rec := doRequest(e, h.Update, nethttp.MethodPatch, "/data/"+recordID.String(), body, func(c echo.Context) {
		c.Set(middleware.ContextUserID, ownerID)
		c.SetParamNames("id")
		c.SetParamValues(recordID.String())
	})

	// Assert
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gudang cadangan")
}

func TestDeleteHandler_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	mockUC := mocks.NewMockDataUC(ctrl)
	mockUC.EXPECT().
		Delete(gomock.Any(), gomock.Any(), recordID, gomock.Any()).
		Return(apperrors.NewNotFound("Data record not found"))

	h := NewDataHandler(mockUC)
	e := newTestEcho()

	// Act
	rec := doRequest(e, h.Delete, nethttp.MethodDelete, "/data/"+recordID.String(), "", func(c echo.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.SetParamNames("id")
		c.SetParamValues(recordID.String())
	})

	// Assert
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
