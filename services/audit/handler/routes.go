// Package handler wires the audit service's HTTP surface.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/audit"
	httphandler "github.com/prasetyadi/temanku/services/audit/handler/http"
)

// RegisterRoutes mounts the audit endpoints, admin only.
func RegisterRoutes(
	e *echo.Echo,
	cfg *models.Config,
	auditUC audit.AuditUC,
	revocations middleware.RevocationChecker,
) {
	h := httphandler.NewAuditHandler(auditUC)

	e.GET("/logs", h.ListLogs,
		middleware.JWTAuthMiddleware(cfg.JWT, revocations),
		middleware.AdminOnlyMiddleware(),
	)
}
