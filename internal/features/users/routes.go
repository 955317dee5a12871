package users

import (
	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/middleware"
	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
	"github.com/coastwatch/coastwatch-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, limiter *ratelimit.RoleLimiter) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	grp := router.Group("/users")
	grp.Use(middleware.Auth(cfg.JWTSecret), limiter.Middleware())
	{
		grp.GET("", middleware.RequireAction(authz.ActionListUsers), handler.List)
		grp.GET("/:id", middleware.RequireAction(authz.ActionGetUser), handler.Get)
	}
}
