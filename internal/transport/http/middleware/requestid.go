package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	KeyRequestID = "X-Request-ID"

	maxRequestIDLen = 64
)

// RequestID propagates a caller supplied X-Request-ID or issues a uuid. Ids
// longer than 64 bytes or outside printable ASCII are replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id RequestID stored on c, or "".
func RequestIDFrom(c *gin.Context) string { return c.GetString(KeyRequestID) }

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(rid); i++ {
		if rid[i] <= ' ' || rid[i] > '~' {
			return false
		}
	}
	return true
}
