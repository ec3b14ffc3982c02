package recognitionrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/recognition/uc"
)

// RegisterRoutes registers the image-recognition route.
func RegisterRoutes(apiBase *gin.RouterGroup, blocks uc.BlockGetter, client llm.Client, threshold int) {
	handler := NewHandler(blocks, client, threshold)
	apiBase.POST("/image-recognition", handler.Score)
}
