package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-gin-gorm-crm/internal/transport/http/response"
)

// Recovery turns a handler panic into an opaque 500 envelope and logs it
// with the request id.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.String("rid", RequestIDFrom(c)),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				resp.Abort(c, resp.CodeServerError, "internal error")
			}
		}()
		c.Next()
	}
}
