package analytics

import (
	"log"

	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Dashboard godoc
// @Summary Get dashboard statistics
// @Description Counts by status, severity and day over a relative time window
// @Tags analytics
// @Security BearerAuth
// @Param dateRange query string false "7d, 30d, 90d or 1y (default 30d)"
// @Param hazardType query string false "Restrict to one hazard type"
// @Success 200 {object} response.APIResponse
// @Router /analytics/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	dateRange := c.DefaultQuery("dateRange", DefaultRange)
	hazardType := c.Query("hazardType")

	data, err := h.repo.Dashboard(c.Request.Context(), dateRange, hazardType)
	if err != nil {
		log.Printf("analytics: dashboard error: %v", err)
		response.StorageError(c, err, "Failed to compute dashboard")
		return
	}

	response.Success(c, data)
}
