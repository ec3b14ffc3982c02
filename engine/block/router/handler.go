package blockrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/block/uc"
	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
)

// Handler handles block HTTP requests.
type Handler struct {
	create *uc.Create
	get    *uc.Get
	list   *uc.ListByProject
	update *uc.Update
	delete *uc.Delete
}

// NewHandler wires the block use cases over the given repositories.
func NewHandler(repo uc.Repository, orders uc.OrderIndex) *Handler {
	return &Handler{
		create: uc.NewCreate(repo, orders),
		get:    uc.NewGet(repo),
		list:   uc.NewListByProject(repo, orders),
		update: uc.NewUpdate(repo),
		delete: uc.NewDelete(repo, orders),
	}
}

// CreateBlockRequest is the POST /blocks payload.
type CreateBlockRequest struct {
	ProjectID     string   `json:"projectId" binding:"required"`
	Checkpoint    string   `json:"checkpoint"`
	Achievement   string   `json:"achievement"`
	Color         string   `json:"color"`
	ReferenceURLs []string `json:"reference_urls"`
	ImgURL        string   `json:"img_url"`
}

// UpdateBlockRequest is the PUT /blocks/:id payload; omitted fields stay
// unchanged.
type UpdateBlockRequest struct {
	Checkpoint    *string   `json:"checkpoint"`
	Achievement   *string   `json:"achievement"`
	Color         *string   `json:"color"`
	ReferenceURLs *[]string `json:"reference_urls"`
	ImgURL        *string   `json:"img_url"`
}

// Create handles POST /blocks.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.create.Execute(c.Request.Context(), &uc.CreateInput{
		ProjectID:     req.ProjectID,
		Checkpoint:    req.Checkpoint,
		Achievement:   req.Achievement,
		Color:         req.Color,
		ReferenceURLs: req.ReferenceURLs,
		ImgURL:        req.ImgURL,
	})
	if err != nil {
		respondBlockError(c, err)
		return
	}
	router.RespondCreated(c, "block created", created)
}

// Get handles GET /blocks/:id.
func (h *Handler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBlockError(c, err)
		return
	}
	router.RespondOK(c, "Success", b)
}

// ListByProject handles GET /blocks/project/:projectId. Blocks come back
// in order-list order with leftovers appended.
func (h *Handler) ListByProject(c *gin.Context) {
	blocks, err := h.list.Execute(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondBlockError(c, err)
		return
	}
	router.RespondOK(c, "Success", blocks)
}

// Update handles PUT /blocks/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.update.Execute(c.Request.Context(), c.Param("id"), &uc.UpdateInput{
		Checkpoint:    req.Checkpoint,
		Achievement:   req.Achievement,
		Color:         req.Color,
		ReferenceURLs: req.ReferenceURLs,
		ImgURL:        req.ImgURL,
	})
	if err != nil {
		respondBlockError(c, err)
		return
	}
	router.RespondOK(c, "block updated", updated)
}

// Delete handles DELETE /blocks/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondBlockError(c, err)
		return
	}
	router.RespondOK(c, "block deleted", nil)
}

func respondBlockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrBlockNotFound), errors.Is(err, uc.ErrProjectNotFound):
		router.RespondNotFound(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput):
		router.RespondBadRequest(c, err.Error())
	default:
		router.RespondInternal(c, err)
	}
}
