package middleware

import (
	"net/http"

	"toystore-be/internal/admin"

	"github.com/gin-gonic/gin"
)

// Context keys set by AdminAuth.
const (
	AdminIDKey    = "adminID"
	AdminEmailKey = "adminEmail"
)

// AdminAuth rejects requests that do not carry a valid admin JWT. The token
// is read from the access_token cookie or a Bearer Authorization header.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := admin.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			return
		}

		claims, err := admin.ParseJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)

		c.Next()
	}
}
