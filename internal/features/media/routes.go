package media

import (
	"log"

	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/middleware"
	"github.com/coastwatch/coastwatch-api/internal/pkg/cloudinary"
	"github.com/coastwatch/coastwatch-api/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, limiter *ratelimit.RoleLimiter) {
	cld, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"coastwatch",
	)
	if err != nil {
		// Uploads will answer 503 until credentials are configured.
		log.Printf("media: cloudinary not configured: %v", err)
	}

	handler := NewHandler(cld)

	grp := router.Group("/media")
	grp.Use(middleware.Auth(cfg.JWTSecret), limiter.Middleware())
	{
		grp.POST("/upload", handler.Upload)
		grp.DELETE("/*publicId", handler.Delete)
	}
}
