package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole restricts a route group to the listed roles. The role claim
// is set by AuthMiddleware, so this must run after it.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "access denied: insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware allows both staff roles into the admin surface. Routes
// that only full admins may touch layer RequireRole("admin") on top.
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole("admin", "editor")
}
