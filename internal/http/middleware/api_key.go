package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-Api-Key"

// APIKey rejects requests whose X-Api-Key header does not match required.
// An empty required key disables the check.
func APIKey(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if required == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if key != required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid API key",
				},
			})
			return
		}
		c.Next()
	}
}
