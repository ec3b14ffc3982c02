package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope used by every endpoint.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// RespondOK writes a 200 response with the standard envelope.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Data: data, Message: message})
}

// RespondCreated writes a 201 response with the standard envelope.
func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Data: data, Message: message})
}
