package userrouter

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
	"github.com/stepwise-hq/stepwise/engine/user"
	"github.com/stepwise-hq/stepwise/engine/user/uc"
)

// Handler handles auth HTTP requests.
type Handler struct {
	register *uc.Register
	login    *uc.Login
	profile  *uc.Profile
}

// NewHandler wires the user use cases over the repository and identity
// provider.
func NewHandler(repo uc.Repository, provider identity.Provider) *Handler {
	return &Handler{
		register: uc.NewRegister(repo, provider),
		login:    uc.NewLogin(repo, provider),
		profile:  uc.NewProfile(repo),
	}
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	CompanyID string `json:"company_id" binding:"required"`
}

// RegisterPersonalRequest is the payload for POST /auth/register-personal.
type RegisterPersonalRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token plus the stored profile.
type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Register handles POST /auth/register for company-affiliated users.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	out, err := h.register.Execute(c.Request.Context(), &uc.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		UserType:  user.TypeCompany,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	router.RespondCreated(c, "user registered", AuthResponse{Token: out.Token, User: out.User})
}

// RegisterPersonal handles POST /auth/register-personal.
func (h *Handler) RegisterPersonal(c *gin.Context) {
	var req RegisterPersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	out, err := h.register.Execute(c.Request.Context(), &uc.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: user.TypePersonal,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	router.RespondCreated(c, "user registered", AuthResponse{Token: out.Token, User: out.User})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.RespondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}
	router.RespondOK(c, "login successful", AuthResponse{Token: out.Token, User: out.User})
}

// Profile handles GET /auth/profile. The auth middleware has already
// verified the token and stashed the uid.
func (h *Handler) Profile(c *gin.Context) {
	uid := c.GetString(router.AuthUIDKey)
	if uid == "" {
		router.RespondUnauthorized(c, "missing authenticated subject")
		return
	}
	u, err := h.profile.Execute(c.Request.Context(), uid)
	if err != nil {
		respondUserError(c, err)
		return
	}
	router.RespondOK(c, "Success", u)
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrEmailExists):
		router.RespondConflict(c, err.Error())
	case errors.Is(err, uc.ErrInvalidInput):
		router.RespondBadRequest(c, err.Error())
	case errors.Is(err, identity.ErrInvalidCredentials):
		router.RespondUnauthorized(c, err.Error())
	case errors.Is(err, uc.ErrUserNotFound):
		router.RespondNotFound(c, err.Error())
	default:
		router.RespondInternal(c, err)
	}
}
