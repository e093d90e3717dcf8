package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-gorm-crm/internal/core/auth"
	resp "go-gin-gorm-crm/internal/transport/http/response"
)

// Context keys set by AuthJWT.
const (
	KeyClaims   = "claims"
	KeyUserID   = "userId"
	KeyUsername = "username"
	KeyRole     = "role"
)

// AuthJWT requires a valid bearer token and, when policy is non-empty, a role
// it allows. The identity is stored on the context.
func AuthJWT(j *auth.JWTer, policy auth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		if !policy.Allows(claims.Role) {
			resp.Abort(c, resp.CodeForbidden, "forbidden")
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyUsername, claims.Username)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// Identity returns the authenticated user id and username, zero when the
// request is anonymous.
func Identity(c *gin.Context) (uint, string) {
	return c.GetUint(KeyUserID), c.GetString(KeyUsername)
}
