package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	classification := api.Group("/classification")
	classification.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		classification.POST("", h.classifyTransect)
		classification.GET("/runs", h.listRuns)
		classification.GET("/runs/:id", h.getRun)
		classification.GET("/stats", h.getStats)
	}

	// Health-check route
	api.GET("/system/health", h.healthCheck)
}
