package middleware

import (
	"net/http"
	"strings"

	"eduportal-backend/pkg/secure"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the authenticated user id is stored under.
const ContextUserID = "user_id"

// RequireAuth validates the Authorization bearer token and stores the
// authenticated admin's id in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := secure.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
