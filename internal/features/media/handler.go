package media

import (
	"log"
	"strings"

	"github.com/coastwatch/coastwatch-api/internal/pkg/cloudinary"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cld *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cld: cld}
}

// Upload godoc
// @Summary Upload a hazard photo
// @Description Stores the photo externally and returns an opaque URL for use as a report's mediaUrl
// @Tags media
// @Security BearerAuth
// @Param media formData file true "Photo (jpg/png/gif/webp, max 10MB)"
// @Success 201 {object} response.APIResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.cld == nil {
		response.ServiceUnavailable(c, "Media storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		response.BadRequest(c, "A 'media' file is required")
		return
	}

	if !cloudinary.IsAllowedImage(fileHeader.Filename) {
		response.BadRequest(c, "Unsupported file type")
		return
	}
	if fileHeader.Size > cloudinary.MaxImageSize {
		response.BadRequest(c, "File exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read file")
		return
	}
	defer file.Close()

	result, err := h.cld.UploadImage(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		log.Printf("media: upload error: %v", err)
		response.InternalServerError(c, "Failed to upload media")
		return
	}

	response.Created(c, result)
}

// Delete godoc
// @Summary Delete an uploaded photo
// @Description Removes the asset behind a report's mediaUrl by its public ID
// @Tags media
// @Security BearerAuth
// @Param publicId path string true "Asset public ID (may contain slashes)"
// @Success 200 {object} response.APIResponse
// @Router /media/{publicId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	// Public IDs carry folder slashes, so the route uses a catch-all param.
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		response.BadRequest(c, "A public ID is required")
		return
	}

	if h.cld == nil {
		response.ServiceUnavailable(c, "Media storage is not configured")
		return
	}

	if err := h.cld.Delete(c.Request.Context(), publicID); err != nil {
		log.Printf("media: delete error: %v", err)
		response.InternalServerError(c, "Failed to delete media")
		return
	}

	response.SuccessMessage(c, "Media deleted", nil)
}
