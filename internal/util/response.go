package util

import (
	"errors"
	"net/http"

	"skillpath_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success writes {"success": true, ...data}.
func Success(c *gin.Context, data gin.H) {
	respond(c, http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	respond(c, http.StatusCreated, data)
}

func respond(c *gin.Context, code int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(code, body)
}

func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	InternalServerError(c)
}

// HandleError maps service errors onto HTTP status codes.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrInvalidInput):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
