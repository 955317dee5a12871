package reports

import (
	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/middleware"
	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
	"github.com/coastwatch/coastwatch-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, clock clockwork.Clock, limiter *ratelimit.RoleLimiter) {
	repo := NewRepository(db, clock)
	handler := NewHandler(repo)

	grp := router.Group("/reports")
	grp.Use(middleware.Auth(cfg.JWTSecret), limiter.Middleware())
	{
		grp.POST("", middleware.RequireAction(authz.ActionCreateReport), handler.Create)
		grp.GET("", handler.List)
		grp.GET("/:id", handler.Get)
		grp.POST("/:id/verify", middleware.RequireAction(authz.ActionVerifyReport), handler.Verify)
		grp.POST("/:id/reject", middleware.RequireAction(authz.ActionVerifyReport), handler.Reject)
	}
}
