package companyrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/company/uc"
)

// RegisterRoutes registers all company routes.
func RegisterRoutes(apiBase *gin.RouterGroup, repo uc.Repository) {
	handler := NewHandler(repo)
	companies := apiBase.Group("/companies")
	{
		companies.POST("", handler.Create)
		companies.GET("/:id", handler.Get)
	}
}
