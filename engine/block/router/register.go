package blockrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/block/uc"
)

// RegisterRoutes registers all block routes.
func RegisterRoutes(apiBase *gin.RouterGroup, repo uc.Repository, orders uc.OrderIndex) {
	handler := NewHandler(repo, orders)
	blocks := apiBase.Group("/blocks")
	{
		blocks.POST("", handler.Create)
		blocks.GET("/project/:projectId", handler.ListByProject)
		blocks.GET("/:id", handler.Get)
		blocks.PUT("/:id", handler.Update)
		blocks.DELETE("/:id", handler.Delete)
	}
}
