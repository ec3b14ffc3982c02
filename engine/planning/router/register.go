package planningrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/planning/uc"
)

// RegisterRoutes registers the task-planning route.
func RegisterRoutes(apiBase *gin.RouterGroup, client llm.Client, blocks uc.BlockCreator, orders uc.OrderIndex) {
	handler := NewHandler(client, blocks, orders)
	apiBase.POST("/task-planning", handler.Generate)
}
