// Package handler wires the auth service's HTTP surface.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/database"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/auth"
	httphandler "github.com/prasetyadi/temanku/services/auth/handler/http"
)

// RegisterRoutes mounts the auth endpoints. Public routes sit behind their
// rate-limit policies; the session routes require a verified bearer token.
func RegisterRoutes(
	e *echo.Echo,
	cfg *models.Config,
	redisClient *database.RedisClient,
	authUC auth.AuthUC,
	revocations middleware.RevocationChecker,
) {
	h := httphandler.NewAuthHandler(authUC)
	rdb := redisClient.GetClient()
	authn := middleware.JWTAuthMiddleware(cfg.JWT, revocations)

	e.POST("/auth/register", h.Register,
		middleware.ForPolicy(rdb, "register-email", cfg.RateLimit.RegisterByEmail, middleware.EmailKey()),
		middleware.ForPolicy(rdb, "register-ip", cfg.RateLimit.RegisterByIP, middleware.IPKey()),
	)
	e.POST("/auth/register/verify", h.VerifyOtp,
		middleware.ForPolicy(rdb, "otp-verify", cfg.RateLimit.OTPVerify, middleware.EmailKey()),
	)
	e.POST("/auth/register/resend-otp", h.ResendOtp,
		middleware.ForPolicy(rdb, "otp-resend", cfg.RateLimit.OTPResend, middleware.EmailKey()),
	)
	e.POST("/auth/login", h.Login,
		middleware.ForPolicy(rdb, "login-ip", cfg.RateLimit.LoginByIP, middleware.IPKey()),
	)
	e.POST("/auth/session/refresh", h.Refresh)

	e.POST("/auth/logout", h.Logout, authn)
	e.PATCH("/auth/password", h.ChangePassword, authn)

	e.GET("/users/me", h.GetProfile, authn)
	e.PATCH("/users/me", h.UpdateProfile, authn)
	e.DELETE("/users/me", h.DeleteAccount, authn)
}
