package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"photoblog-backend/internal/shared/response"
	"photoblog-backend/pkg/logger"
)

// Recovery turns a handler panic into a 500 envelope instead of a dropped
// connection, logging the panic value and stack with the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(
					fmt.Sprintf("panic recovered [%s] %s %s",
						c.GetString("request_id"), c.Request.Method, c.Request.URL.Path),
					fmt.Errorf("%v\n%s", rec, debug.Stack()),
				)

				response.ErrorResponse(c, http.StatusInternalServerError,
					"INTERNAL_SERVER_ERROR", "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
