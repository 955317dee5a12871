package maps

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

// Reports godoc
// @Summary Get reports for map display
// @Description Spatial search by bounding box or radius, with status/severity filters
// @Tags map
// @Security BearerAuth
// @Param bounds query string false "swLng,swLat,neLng,neLat"
// @Param lat query number false "Center latitude (with lng and radius)"
// @Param lng query number false "Center longitude (with lat and radius)"
// @Param radius query number false "Radius in km (0.1-100)"
// @Param status query string false "Filter by status, or 'all'"
// @Param severity query string false "Filter by severity"
// @Success 200 {object} response.APIResponse
// @Router /map/reports [get]
func (h *Handler) Reports(c *gin.Context) {
	q := Query{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
	}

	// Bounds and radius are mutually exclusive; bounds wins when both arrive.
	if boundsStr := c.Query("bounds"); boundsStr != "" {
		bounds, err := ParseBounds(boundsStr)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		q.Bounds = bounds
	} else if c.Query("lat") != "" || c.Query("lng") != "" || c.Query("radius") != "" {
		center, err := ParseCenter(c.Query("lat"), c.Query("lng"), c.Query("radius"))
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		q.Center = center
	}

	items, err := h.repo.Find(c.Request.Context(), q)
	if err != nil {
		log.Printf("maps: query error: %v", err)
		response.StorageError(c, err, "Failed to query reports")
		return
	}

	response.Success(c, items)
}
