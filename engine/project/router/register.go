package projectrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/project/uc"
)

// RegisterRoutes registers all project routes.
func RegisterRoutes(apiBase *gin.RouterGroup, repo uc.Repository, rags uc.RagRepository) {
	handler := NewHandler(repo, rags)
	projects := apiBase.Group("/projects")
	{
		projects.POST("", handler.Create)
		projects.GET("", handler.ListByCompany)
		projects.GET("/:id", handler.Get)
		projects.DELETE("/:id", handler.Delete)
		projects.PUT("/:id/reorder-blocks", handler.Reorder)
		projects.POST("/:id/rag_document", handler.RegisterRag)
		projects.GET("/:id/rag", handler.ListRag)
	}
}
