package ratelimit

import (
	"strconv"
	"time"

	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Rule is a per-role request cap over a window.
type Rule struct {
	Window time.Duration
	Max    int
}

// DefaultRoleRules is the per-role rate-limit table: higher-privilege roles
// get a larger request budget over the same 15 minute window.
func DefaultRoleRules() map[string]Rule {
	return map[string]Rule{
		authz.RoleCitizen:  {Window: 15 * time.Minute, Max: 50},
		authz.RoleVerifier: {Window: 15 * time.Minute, Max: 100},
		authz.RoleAnalyst:  {Window: 15 * time.Minute, Max: 200},
		authz.RoleAdmin:    {Window: 15 * time.Minute, Max: 500},
	}
}

// RoleLimiter holds one sliding-window limiter per role.
type RoleLimiter struct {
	limiters map[string]*Limiter
	fallback *Limiter
}

// NewRoleLimiter builds a limiter set from a role rule table. Requests with
// no resolved role (pre-auth) fall back to the citizen budget keyed by IP.
func NewRoleLimiter(rules map[string]Rule) *RoleLimiter {
	rl := &RoleLimiter{limiters: make(map[string]*Limiter)}
	for role, rule := range rules {
		lim := New(rule.Max, rule.Window)
		lim.StartCleanup(rule.Window)
		rl.limiters[role] = lim
	}

	if lim, ok := rl.limiters[authz.RoleCitizen]; ok {
		rl.fallback = lim
	} else {
		rl.fallback = New(50, 15*time.Minute)
	}
	return rl
}

// Middleware enforces the role table. It keys by subject id when the auth
// middleware has already run, otherwise by client IP.
func (rl *RoleLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		key := c.GetString("subjectID")
		if key == "" {
			key = c.ClientIP()
		}

		lim, ok := rl.limiters[role]
		if !ok {
			lim = rl.fallback
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(lim.limit))

		if !lim.Allow(key) {
			c.Header("X-RateLimit-Remaining", "0")
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(lim.Remaining(key)))
		c.Next()
	}
}
