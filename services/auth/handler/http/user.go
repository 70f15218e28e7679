package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
)

// GetProfile handles GET /users/me.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return apperrors.NewAuthentication("You need to sign in to access this resource")
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved", user)
}

// UpdateProfile handles PATCH /users/me.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}

	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return apperrors.NewAuthentication("You need to sign in to access this resource")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, &req, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated", user)
}

// DeleteAccount handles DELETE /users/me.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return apperrors.NewAuthentication("You need to sign in to access this resource")
	}
	accessToken, _ := c.Get(middleware.ContextAccessToken).(string)

	if err := h.authUC.DeleteAccount(c.Request().Context(), userID, accessToken, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Account deleted", nil)
}
