// Package http exposes the data records over HTTP.
package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/data"
)

// DataHandler serves the owner-scoped data endpoints.
type DataHandler struct {
	dataUC data.DataUC
}

func NewDataHandler(dataUC data.DataUC) *DataHandler {
	return &DataHandler{dataUC: dataUC}
}

// Create handles POST /data.
func (h *DataHandler) Create(c echo.Context) error {
	var req models.CreateDataRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return apperrors.NewAuthentication("You need to sign in to access this resource")
	}

	record, err := h.dataUC.Create(c.Request().Context(), userID, &req, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Data record created", record)
}

// List handles GET /data.
func (h *DataHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return apperrors.NewAuthentication("You need to sign in to access this resource")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	records, err := h.dataUC.List(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Data records retrieved", records)
}

// Get handles GET /data/:id.
func (h *DataHandler) Get(c echo.Context) error {
	userID, id, err := h.identifiers(c)
	if err != nil {
		return err
	}

	record, err := h.dataUC.Get(c.Request().Context(), userID, id, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Data record retrieved", record)
}

// Update handles PATCH /data/:id.
func (h *DataHandler) Update(c echo.Context) error {
	userID, id, err := h.identifiers(c)
	if err != nil {
		return err
	}

	var req models.UpdateDataRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}

	record, err := h.dataUC.Update(c.Request().Context(), userID, id, &req, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Data record updated", record)
}

// Delete handles DELETE /data/:id.
func (h *DataHandler) Delete(c echo.Context) error {
	userID, id, err := h.identifiers(c)
	if err != nil {
		return err
	}

	if err := h.dataUC.Delete(c.Request().Context(), userID, id, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Data record deleted", nil)
}

// identifiers pulls the acting user from context and the record id from the
// path.
func (h *DataHandler) identifiers(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, apperrors.NewAuthentication("You need to sign in to access this resource")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.NewValidation("Invalid record id")
	}

	return userID, id, nil
}
