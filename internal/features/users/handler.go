package users

import (
	"errors"
	"log"

	"github.com/coastwatch/coastwatch-api/internal/pkg/pagination"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List users
// @Description Admin-only user listing with role/status filters and name search
// @Tags users
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by account status"
// @Param search query string false "Match against name or email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if err := ValidateListFilter(filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page := pagination.FromQuery(c.Query("page"), c.Query("limit"), 20, maxListLimit)
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	order := c.DefaultQuery("sortOrder", "desc")

	items, total, err := h.repo.List(c.Request.Context(), filter, sortBy, order, page.Offset, page.Limit)
	if err != nil {
		log.Printf("users: list error: %v", err)
		response.StorageError(c, err, "Failed to list users")
		return
	}

	response.Paginated(c, items, response.Pagination{
		Total: total,
		Page:  page.Page,
		Pages: pagination.Pages(total, page.Limit),
	})
}

// Get godoc
// @Summary Get a user by ID
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.APIResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	user, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		log.Printf("users: get error: %v", err)
		response.StorageError(c, err, "Failed to get user")
		return
	}

	response.Success(c, user)
}
