package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TriggerAuthMiddleware guards the event endpoint with a shared bearer token
// presented by the trigger relay.
func TriggerAuthMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if expectedToken == "" || tokenString != expectedToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized trigger access"})
			return
		}

		c.Next()
	}
}
