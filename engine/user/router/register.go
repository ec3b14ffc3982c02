package userrouter

import (
	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/user/uc"
)

// RegisterRoutes registers the auth routes. Only the profile route sits
// behind the bearer-token middleware; registration and login are public.
func RegisterRoutes(apiBase *gin.RouterGroup, repo uc.Repository, provider identity.Provider, requireAuth gin.HandlerFunc) {
	handler := NewHandler(repo, provider)
	auth := apiBase.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/register-personal", handler.RegisterPersonal)
		auth.POST("/login", handler.Login)
		auth.GET("/profile", requireAuth, handler.Profile)
	}
}
