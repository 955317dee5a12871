package auth

import (
	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/middleware"
	"github.com/coastwatch/coastwatch-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, limiter *ratelimit.RoleLimiter) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	grp := router.Group("/auth")
	grp.Use(limiter.Middleware())
	{
		grp.POST("/register", handler.Register)
		grp.POST("/login", handler.Login)
		grp.GET("/me", middleware.Auth(cfg.JWTSecret), handler.Me)
	}
}
