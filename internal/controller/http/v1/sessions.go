package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gym-network-toolkit/portal/internal/usecase/portal"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

type sessionRoutes struct {
	t portal.Feature
	l logger.Interface
}

// NewSessionRoutes registers the admin session surface: list what is on
// the network and force-disconnect a device.
func NewSessionRoutes(handler *gin.RouterGroup, t portal.Feature, l logger.Interface) {
	r := &sessionRoutes{t, l}

	h := handler.Group("/sessions")
	{
		h.GET("", r.list)
		h.DELETE(":id", r.disconnect)
	}
}

func (r *sessionRoutes) list(c *gin.Context) {
	items, err := r.t.ListSessions(c.Request.Context(), c.Query("gymId"))
	if err != nil {
		r.l.Error(err, "http - v1 - sessions list")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, items)
}

func (r *sessionRoutes) disconnect(c *gin.Context) {
	result := r.t.Disconnect(c.Request.Context(), c.Param("id"))
	if !result.Success {
		c.JSON(http.StatusNotFound, result)

		return
	}

	c.JSON(http.StatusOK, result)
}
