package reports

import (
	"errors"
	"log"
	"strings"

	"github.com/coastwatch/coastwatch-api/internal/pkg/pagination"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Submit a new hazard report
// @Description Create a geotagged hazard report; it starts in pending status
// @Tags reports
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report submission"
// @Success 201 {object} response.APIResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	subjectID := c.GetString("subjectID")

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateCreateReport(&req); err != nil {
		response.ValidationErrors(c, []string{err.Error()})
		return
	}

	reporterID, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		response.Unauthorized(c, "Invalid subject")
		return
	}

	report := &Report{
		UserID:      reporterID,
		HazardType:  req.HazardType,
		Severity:    req.Severity,
		Description: strings.TrimSpace(req.Description),
		Location: GeoPoint{
			Type:        "Point",
			Coordinates: req.Location.Coordinates,
		},
		MediaURL: req.MediaURL,
	}

	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		h.storageError(c, err, "Failed to create report")
		return
	}

	log.Printf("Report created: %s by user %s", report.ID.Hex(), subjectID)
	response.Created(c, report)
}

// Get godoc
// @Summary Get a report by ID
// @Tags reports
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		h.storageError(c, err, "Failed to get report")
		return
	}

	response.Success(c, report)
}

// List godoc
// @Summary List reports
// @Description Filter by status and hazardType, sort by any field, paginate
// @Tags reports
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param hazardType query string false "Filter by hazard type"
// @Param sortBy query string false "Sort field (default createdAt)"
// @Param order query string false "asc or desc (default desc)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 500)"
// @Success 200 {object} response.PaginatedResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:     c.Query("status"),
		HazardType: c.Query("hazardType"),
	}
	if err := ValidateListFilter(filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page := pagination.FromQuery(c.Query("page"), c.Query("limit"), 10, MaxListLimit)
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	order := c.DefaultQuery("order", "desc")

	items, total, err := h.repo.List(c.Request.Context(), filter, sortBy, order, page.Offset, page.Limit)
	if err != nil {
		h.storageError(c, err, "Failed to list reports")
		return
	}

	response.Paginated(c, items, response.Pagination{
		Total: total,
		Page:  page.Page,
		Pages: pagination.Pages(total, page.Limit),
	})
}

// Verify godoc
// @Summary Verify a pending report
// @Description Transition pending -> verified; fails if the report already left pending
// @Tags reports
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /reports/{id}/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	verifierID, err := primitive.ObjectIDFromHex(c.GetString("subjectID"))
	if err != nil {
		response.Unauthorized(c, "Invalid subject")
		return
	}

	report, err := h.repo.Verify(c.Request.Context(), c.Param("id"), verifierID)
	if err != nil {
		h.transitionError(c, err)
		return
	}

	log.Printf("Report verified: %s by user %s", report.ID.Hex(), verifierID.Hex())
	response.SuccessMessage(c, "Report verified successfully", report)
}

// Reject godoc
// @Summary Reject a pending report
// @Description Transition pending -> rejected with an optional reason
// @Tags reports
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body RejectReportRequest false "Rejection reason"
// @Success 200 {object} response.APIResponse
// @Router /reports/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	verifierID, err := primitive.ObjectIDFromHex(c.GetString("subjectID"))
	if err != nil {
		response.Unauthorized(c, "Invalid subject")
		return
	}

	var req RejectReportRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	report, err := h.repo.Reject(c.Request.Context(), c.Param("id"), verifierID, req.Reason)
	if err != nil {
		h.transitionError(c, err)
		return
	}

	log.Printf("Report rejected: %s by user %s", report.ID.Hex(), verifierID.Hex())
	response.SuccessMessage(c, "Report rejected", report)
}

func (h *Handler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Report not found")
	case errors.Is(err, ErrNotPending):
		response.BadRequest(c, "Report is not pending verification")
	default:
		h.storageError(c, err, "Failed to update report")
	}
}

func (h *Handler) storageError(c *gin.Context, err error, message string) {
	log.Printf("reports: storage error: %v", err)
	response.StorageError(c, err, message)
}
