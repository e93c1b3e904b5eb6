package middleware

import (
	"time"

	"smarthome/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger attaches a logger tagged with a request id to the context and logs each request once it completes.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(utils.RequestIDHeader, requestID)

		logger := base.With(zap.String("requestId", requestID))
		c.Set(utils.LoggerKey, logger)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		)
	}
}
