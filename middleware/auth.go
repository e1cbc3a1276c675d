package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory/services"
)

// Context keys under which the authenticated identity is stored.
const (
	ContextUsername = "username"
	ContextIsAdmin  = "isAdmin"
)

// RequireAuth gates a route behind a bearer token. Requests with a missing,
// malformed, expired or badly signed token are rejected before any handler
// logic runs; on success the decoded identity is attached to the context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}
