package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/pkg/logger"
)

// Logger logs one line per request after it completes.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		line := log.WithFields(map[string]interface{}{
			"request_id": c.GetString(ContextRequestID),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})

		switch {
		case status >= 500:
			var err error
			if last := c.Errors.Last(); last != nil {
				err = last.Err
			}
			line.Error(err, "request processed")
		case status >= 400:
			line.Warn("request processed")
		default:
			line.Info("request processed")
		}
	}
}
