package routes

import (
	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/features/analytics"
	"github.com/coastwatch/coastwatch-api/internal/features/auth"
	"github.com/coastwatch/coastwatch-api/internal/features/maps"
	"github.com/coastwatch/coastwatch-api/internal/features/media"
	"github.com/coastwatch/coastwatch-api/internal/features/reports"
	"github.com/coastwatch/coastwatch-api/internal/features/users"
	"github.com/coastwatch/coastwatch-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api/v1")

	// Per-role request budgets. Each feature applies this after Auth so the
	// resolved role picks the budget; unauthenticated routes fall back to
	// the citizen budget keyed by client IP.
	limiter := ratelimit.NewRoleLimiter(ratelimit.DefaultRoleRules())

	clock := clockwork.NewRealClock()

	auth.RegisterRoutes(api, db, cfg, limiter)
	reports.RegisterRoutes(api, db, cfg, clock, limiter)
	maps.RegisterRoutes(api, db, cfg, limiter)
	analytics.RegisterRoutes(api, db, cfg, clock, limiter)
	users.RegisterRoutes(api, db, cfg, limiter)
	media.RegisterRoutes(api, cfg, limiter)
}
