package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"github.com/stepwise-hq/stepwise/engine/infra/identity"
	"github.com/stepwise-hq/stepwise/engine/infra/server/router"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// RequestID assigns a correlation id to every request and exposes it both
// to handlers (for 500 payloads) and to clients via the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = ksuid.New().String()
		}
		c.Set(router.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger attaches a request-scoped logger to the request context.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log.With(
			"request_id", c.GetString(router.RequestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		ctx := logger.ContextWithLogger(c.Request.Context(), reqLog)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth verifies the bearer token against the identity provider and
// stores the resolved uid in the gin context.
func RequireAuth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			router.RespondUnauthorized(c, "missing bearer token")
			return
		}
		uid, err := provider.Verify(c.Request.Context(), token)
		if err != nil {
			router.RespondUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(router.AuthUIDKey, uid)
		c.Next()
	}
}
