package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.resqforce.server/internal/apperrors"
)

// respondError maps an application error to its HTTP response. Dependency
// failures keep their cause server-side.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	status := apperrors.Status(err)
	if status >= 500 {
		logger.Errorw("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": apperrors.ClientMessage(err)})
}
