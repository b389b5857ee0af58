package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"photoblog-backend/pkg/logger"
)

// Logger writes one access-log line per request through the project logger.
// Requests that resolved an actor carry its id so a session can be followed
// across the log; server errors are logged at warn level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		}
		if actor := ActorFrom(c); !actor.IsAnonymous() {
			fields["actor_id"] = actor.ID.String()
		}

		if status >= 500 {
			fields["errors"] = c.Errors.String()
			logger.Warn("request failed", fields)
			return
		}
		logger.Info("request", fields)
	}
}
