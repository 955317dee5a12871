package middleware

import (
	"log"

	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAction gates a route on the policy engine. It runs after Auth and
// before any domain logic, so a denied request never reaches a repository.
func RequireAction(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		decision := authz.Authorize(role, action)
		if !decision.Allowed {
			log.Printf("Access denied for user %s with role %s to action %s",
				c.GetString("subjectID"), role, action)
			response.ForbiddenRoles(c, "Access denied. Insufficient permissions.",
				decision.RequiredRoles, role)
			c.Abort()
			return
		}

		c.Next()
	}
}
