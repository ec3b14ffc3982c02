package projectrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
	"github.com/stepwise-hq/stepwise/engine/project/uc"
)

// Handler handles project HTTP requests.
type Handler struct {
	create  *uc.Create
	get     *uc.Get
	list    *uc.List
	delete  *uc.Delete
	reorder *uc.Reorder
	ragAdd  *uc.RegisterRagDocument
	ragList *uc.ListRagDocuments
}

// NewHandler wires the project use cases over the given repositories.
func NewHandler(repo uc.Repository, rags uc.RagRepository) *Handler {
	return &Handler{
		create:  uc.NewCreate(repo),
		get:     uc.NewGet(repo),
		list:    uc.NewList(repo),
		delete:  uc.NewDelete(repo),
		reorder: uc.NewReorder(repo),
		ragAdd:  uc.NewRegisterRagDocument(repo, rags),
		ragList: uc.NewListRagDocuments(repo, rags),
	}
}

// CreateProjectRequest is the POST /projects payload.
type CreateProjectRequest struct {
	Name          string   `json:"name" binding:"required"`
	CompanyID     string   `json:"company_id"`
	BlockOrderIDs []string `json:"block_order_ids"`
}

// ReorderRequest is the PUT /projects/:id/reorder-blocks payload.
type ReorderRequest struct {
	BlockOrderIDs []string `json:"block_order_ids" binding:"required"`
}

// RegisterRagRequest is the POST /projects/:id/rag payload.
type RegisterRagRequest struct {
	StorageURL string `json:"storage_url" binding:"required"`
}

// Create handles POST /projects.
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.create.Execute(c.Request.Context(), &uc.CreateInput{
		Name:          req.Name,
		CompanyID:     req.CompanyID,
		BlockOrderIDs: req.BlockOrderIDs,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondCreated(c, "project created", created)
}

// Get handles GET /projects/:id.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondOK(c, "Success", p)
}

// ListByCompany handles GET /projects?companyId=.
func (h *Handler) ListByCompany(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		router.RespondBadRequest(c, "companyId query parameter is required")
		return
	}
	projects, err := h.list.Execute(c.Request.Context(), companyID)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondOK(c, "Success", projects)
}

// Delete handles DELETE /projects/:id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondOK(c, "project deleted", nil)
}

// Reorder handles PUT /projects/:id/reorder-blocks. The supplied order is
// stored verbatim.
func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.reorder.Execute(c.Request.Context(), c.Param("id"), req.BlockOrderIDs); err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondOK(c, "block order updated", gin.H{"block_order_ids": req.BlockOrderIDs})
}

// RegisterRag handles POST /projects/:id/rag_document.
func (h *Handler) RegisterRag(c *gin.Context) {
	var req RegisterRagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	doc, err := h.ragAdd.Execute(c.Request.Context(), c.Param("id"), req.StorageURL)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondCreated(c, "rag document registered", doc)
}

// ListRag handles GET /projects/:id/rag.
func (h *Handler) ListRag(c *gin.Context) {
	docs, err := h.ragList.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	router.RespondOK(c, "Success", docs)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrNotFound):
		router.RespondNotFound(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput), errors.Is(err, uc.ErrOrderMismatch):
		router.RespondBadRequest(c, err.Error())
	default:
		router.RespondInternal(c, err)
	}
}
