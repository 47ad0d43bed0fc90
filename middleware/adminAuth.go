package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"splashshine/config"
)

// AdminAuthMiddleware guards the admin surface with the static token
// configured for the owner's panel.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate against the fixed admin token.
		if tokenString != config.AppConfig.AdminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
