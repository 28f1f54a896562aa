package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/pkg/logging"
)

// respondError maps an engine error to the wire: request errors keep
// their message at 400, dependency failures surface as 500 without
// leaking internals.
func respondError(c *gin.Context, err error) {
	if hype.IsUserError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logging.WithContext(
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
	).Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
