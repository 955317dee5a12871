package middleware

import (
	"strings"

	"github.com/coastwatch/coastwatch-api/internal/pkg/response"
	"github.com/coastwatch/coastwatch-api/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// Auth resolves the bearer token into (subjectID, role) and stores both on
// the context. Every mutation and read path behind it can assume identity
// has already been verified.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and a raw token
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.Validate(tokenString, secret)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("subjectID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
