// Package handler wires the data service's HTTP surface.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/services/data"
	httphandler "github.com/prasetyadi/temanku/services/data/handler/http"
)

// RegisterRoutes mounts the data endpoints. All of them require a verified
// bearer token.
func RegisterRoutes(
	e *echo.Echo,
	cfg *models.Config,
	dataUC data.DataUC,
	revocations middleware.RevocationChecker,
) {
	h := httphandler.NewDataHandler(dataUC)
	authn := middleware.JWTAuthMiddleware(cfg.JWT, revocations)

	g := e.Group("/data", authn)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
