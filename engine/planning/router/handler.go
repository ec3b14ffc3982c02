package planningrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/planning/uc"
)

// Handler handles task-planning HTTP requests.
type Handler struct {
	generate *uc.Generate
}

func NewHandler(client llm.Client, blocks uc.BlockCreator, orders uc.OrderIndex) *Handler {
	return &Handler{generate: uc.NewGenerate(client, blocks, orders)}
}

// GenerateRequest is the POST /task-planning payload.
type GenerateRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
}

// Generate handles POST /task-planning.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	out, err := h.generate.Execute(c.Request.Context(), &uc.GenerateInput{
		Prompt:    req.Prompt,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondPlanningError(c, err)
		return
	}
	router.RespondCreated(c, "task plan generated", gin.H{
		"plan":         out.Plan,
		"saved_blocks": out.SavedBlocks,
	})
}

func respondPlanningError(c *gin.Context, err error) {
	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, uc.ErrProjectNotFound):
		router.RespondNotFound(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput):
		router.RespondBadRequest(c, err.Error())
	case errors.Is(err, uc.ErrMalformedPlan):
		router.RespondProblemWithCode(c, 502, "PLAN_PARSE_FAILURE", err.Error())
	case errors.As(err, &upstream):
		router.RespondUpstream(c, upstream)
	default:
		router.RespondInternal(c, err)
	}
}
