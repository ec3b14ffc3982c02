package recognitionrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/engine/recognition/uc"
)

// Handler handles image-recognition HTTP requests.
type Handler struct {
	score *uc.Score
}

func NewHandler(blocks uc.BlockGetter, client llm.Client, threshold int) *Handler {
	return &Handler{score: uc.NewScore(blocks, client, threshold)}
}

// ScoreRequest is the POST /image-recognition payload.
type ScoreRequest struct {
	BlockID  string `json:"block_id" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

// Score handles POST /image-recognition. Both passing and failing scores
// return 200; only transport or model failures are errors.
func (h *Handler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	out, err := h.score.Execute(c.Request.Context(), &uc.ScoreInput{
		BlockID:  req.BlockID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondRecognitionError(c, err)
		return
	}
	router.RespondOK(c, "image scored", out)
}

func respondRecognitionError(c *gin.Context, err error) {
	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, uc.ErrBlockNotFound):
		router.RespondNotFound(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput):
		router.RespondBadRequest(c, err.Error())
	case errors.As(err, &upstream):
		router.RespondUpstream(c, upstream)
	default:
		router.RespondInternal(c, err)
	}
}
