package middleware

import (
	"net/http"
	"strings"

	"points_ledger/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT verifies the Authorization bearer token and stores the caller's user id
// in the request context under "user_id". Requests without a valid token are
// rejected here and never reach the ledger.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, err := service.ParseJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
