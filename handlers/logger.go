package handlers

import (
	"smarthome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(utils.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// decodedEmail returns the email the auth middleware verified for this request.
func decodedEmail(c *gin.Context) string {
	return c.GetString(utils.DecodedEmailKey)
}
