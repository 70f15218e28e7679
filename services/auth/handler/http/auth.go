// Package http exposes the auth service over HTTP.
package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/auth"
)

// AuthHandler serves the registration and session endpoints.
type AuthHandler struct {
	authUC auth.AuthUC
}

func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authUC.Register(c.Request().Context(), &req, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Verification code sent", nil)
}

// VerifyOtp handles POST /auth/register/verify.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req models.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authUC.VerifyRegistration(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Account created", user)
}

// ResendOtp handles POST /auth/register/resend-otp.
func (h *AuthHandler) ResendOtp(c echo.Context) error {
	var req models.ResendOtpRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authUC.ResendOtp(c.Request().Context(), &req, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Verification code sent", nil)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged in", resp)
}

// Refresh handles POST /auth/session/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken, c.RealIP())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Session refreshed", resp)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req models.LogoutRequest
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
	accessToken, _ := c.Get(middleware.ContextAccessToken).(string)

	if err := h.authUC.Logout(c.Request().Context(), userID, accessToken, req.RefreshToken, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged out", nil)
}

// ChangePassword handles PATCH /auth/password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
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

	if err := h.authUC.ChangePassword(c.Request().Context(), userID, &req, c.RealIP()); err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Password changed", nil)
}
