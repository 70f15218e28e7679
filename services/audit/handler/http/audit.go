// Package http exposes the audit trail over HTTP.
package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/utils"
	"github.com/prasetyadi/temanku/services/audit"
)

// AuditHandler serves the admin audit endpoints.
type AuditHandler struct {
	auditUC audit.AuditUC
}

func NewAuditHandler(auditUC audit.AuditUC) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// ListLogs handles GET /logs. The route is admin-gated by middleware; limit
// and offset come from query parameters.
func (h *AuditHandler) ListLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	logs, err := h.auditUC.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Audit logs retrieved", logs)
}
