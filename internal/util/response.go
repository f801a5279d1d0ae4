package util

import (
	"net/http"

	"mlcourse_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with. The client keys
// off the success flag and surfaces the message verbatim.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// InternalError echoes the underlying error string as the data payload.
// Leaking store errors to the caller is part of the contract being
// reproduced here; tighten before exposing this API publicly.
func InternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
		Data:    err.Error(),
	})
}
