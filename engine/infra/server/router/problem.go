package router

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stepwise-hq/stepwise/engine/core"
	"github.com/stepwise-hq/stepwise/engine/llm"
	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// RequestIDKey is the gin context key under which the request-id
// middleware stores the correlation id.
const RequestIDKey = "request_id"

// AuthUIDKey is the gin context key under which the auth middleware
// stores the verified identity subject of the caller.
const AuthUIDKey = "auth_uid"

// RespondProblem writes a canonical RFC 7807 error response.
func RespondProblem(c *gin.Context, problem *core.Problem) {
	prepared := core.NormalizeProblem(problem)
	body := core.BuildProblemBody(prepared)
	writeProblemResponse(c, prepared, body)
}

// RespondProblemWithCode writes a problem response embedding a code and detail.
func RespondProblemWithCode(c *gin.Context, status int, code string, detail string) {
	RespondProblem(c, &core.Problem{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
		Extras: map[string]any{"code": code},
	})
}

// RespondNotFound writes a 404 problem.
func RespondNotFound(c *gin.Context, detail string) {
	RespondProblemWithCode(c, http.StatusNotFound, core.ErrCodeNotFound, detail)
}

// RespondBadRequest writes a 400 problem.
func RespondBadRequest(c *gin.Context, detail string) {
	RespondProblemWithCode(c, http.StatusBadRequest, core.ErrCodeValidation, detail)
}

// RespondConflict writes a 409 problem.
func RespondConflict(c *gin.Context, detail string) {
	RespondProblemWithCode(c, http.StatusConflict, core.ErrCodeConflict, detail)
}

// RespondUnauthorized writes a 401 problem.
func RespondUnauthorized(c *gin.Context, detail string) {
	RespondProblemWithCode(c, http.StatusUnauthorized, core.ErrCodeUnauthorized, detail)
}

// RespondUpstream maps a classified LLM failure to a 502 problem carrying
// the kind-specific user message and code.
func RespondUpstream(c *gin.Context, err *llm.UpstreamError) {
	RespondProblem(c, &core.Problem{
		Status: http.StatusBadGateway,
		Title:  http.StatusText(http.StatusBadGateway),
		Detail: err.UserMessage(),
		Extras: map[string]any{"code": err.Code()},
	})
}

// RespondInternal flattens an unrecognized error to a 500 problem tagged
// with the request correlation id for operator triage. The underlying
// error is logged, not returned.
func RespondInternal(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())
	requestID := c.GetString(RequestIDKey)
	log.Error("request failed with internal error", "error", err, "request_id", requestID)
	RespondProblem(c, &core.Problem{
		Status: http.StatusInternalServerError,
		Detail: "internal server error",
		Extras: map[string]any{"code": core.ErrCodeInternal, "request_id": requestID},
	})
}

func writeProblemResponse(c *gin.Context, problem *core.Problem, body map[string]any) {
	logProblem(c, problem)
	payload, err := json.Marshal(body)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to marshal problem", "err", err)
		fallback := []byte(`{"status":500,"error":"Internal Server Error"}`)
		c.Data(http.StatusInternalServerError, "application/problem+json", fallback)
		c.Abort()
		return
	}
	c.Data(problem.Status, "application/problem+json", payload)
	c.Abort()
}

func logProblem(c *gin.Context, problem *core.Problem) {
	log := logger.FromContext(c.Request.Context())
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	fields := []any{
		"status", problem.Status,
		"detail", problem.Detail,
		"route", route,
	}
	if code, ok := problem.Extras["code"]; ok {
		fields = append(fields, "code", code)
	}
	if requestID := c.GetString(RequestIDKey); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if problem.Status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
		return
	}
	log.Warn("request failed", fields...)
}
