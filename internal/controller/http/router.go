// Package http implements routing paths. Each service in own file.
package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gym-network-toolkit/portal/config"
	v1 "github.com/gym-network-toolkit/portal/internal/controller/http/v1"
	"github.com/gym-network-toolkit/portal/internal/usecase"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

//go:embed ui
var content embed.FS

// NewRouter sets up the HTTP router: the public captive portal surface,
// the JWT-protected admin API, and the operational endpoints.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	handler.SetHTMLTemplate(template.Must(template.ParseFS(content, "ui/*.html")))

	// Public routes
	login := v1.NewLoginRoute(cfg)
	handler.POST("/api/v1/authorize", login.Login)

	v1.NewPortalRoutes(handler, t.Portal, l)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	vr := v1.NewVersionRoute(cfg)
	handler.GET("/version", vr.LatestReleaseHandler)

	// Protected routes using JWT middleware
	var protected *gin.RouterGroup
	if cfg.Auth.Disabled {
		protected = handler.Group("/api")
	} else {
		protected = handler.Group("/api", login.JWTAuthMiddleware())
	}

	h := protected.Group("/v1")
	{
		v1.NewSessionRoutes(h, t.Portal, l)
	}
}
