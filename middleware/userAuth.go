package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"splashshine/utils"
)

// UserAuthMiddleware validates the Bearer JWT issued at sign-in and stashes
// the authenticated user ID on the request context.
func UserAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
