package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/utils"
)

// Identity resolves the session user from an optional Authorization
// header. The request proceeds either way; handlers that need a user
// read "user_id" from the context or fall back to the request body's
// userId field. Invalid tokens are treated the same as no token.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err == nil {
			c.Set("user_id", claims.UserID)
			if claims.Email != "" {
				c.Set("user_email", claims.Email)
			}
		}

		c.Next()
	}
}

// ContextUserID returns the identity middleware's resolved user, or ""
// for anonymous requests.
func ContextUserID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
