package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireBearer rejects requests whose Authorization header does not carry
// token. An empty token disables the check but still forwards Company-ID.
func RequireBearer(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Company-scoped views send the HR user's company along.
		if companyID := c.GetHeader("Company-ID"); companyID != "" {
			c.Set("companyID", companyID)
		}
		if token == "" {
			c.Next()
			return
		}
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid bearer token"})
			return
		}
		c.Next()
	}
}
