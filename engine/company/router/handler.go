package companyrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/company/uc"
	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
)

// Handler handles company HTTP requests.
type Handler struct {
	create *uc.Create
	get    *uc.Get
}

func NewHandler(repo uc.Repository) *Handler {
	return &Handler{create: uc.NewCreate(repo), get: uc.NewGet(repo)}
}

// CreateCompanyRequest is the POST /companies payload.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /companies.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.create.Execute(c.Request.Context(), req.Name)
	if err != nil {
		respondCompanyError(c, err)
		return
	}
	router.RespondCreated(c, "company created", created)
}

// Get handles GET /companies/:id.
func (h *Handler) Get(c *gin.Context) {
	company, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCompanyError(c, err)
		return
	}
	router.RespondOK(c, "Success", company)
}

func respondCompanyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrNotFound):
		router.RespondNotFound(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput):
		router.RespondBadRequest(c, err.Error())
	default:
		router.RespondInternal(c, err)
	}
}
