package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renova/internal/service"
)

// PrestationHandler handles service-offering endpoints.
type PrestationHandler struct {
	prestationService service.PrestationService
}

// NewPrestationHandler creates a new PrestationHandler.
func NewPrestationHandler(prestationService service.PrestationService) *PrestationHandler {
	return &PrestationHandler{prestationService: prestationService}
}

// List handles GET /api/prestation
func (h *PrestationHandler) List(c *gin.Context) {
	prestations, err := h.prestationService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, prestations)
}

// GetByID handles GET /api/prestation/:id
func (h *PrestationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.prestationService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Create handles POST /api/prestation
// @Summary Create a prestation
// @Description Create a service offering from a multipart form with image uploads
// @Tags prestations
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param bannerImage formData file true "Banner image"
// @Param otherImage formData file false "Gallery images (repeatable)"
// @Success 201 {object} APIResponse "Created prestation with proxied image URLs"
// @Failure 400 {object} APIResponse "Missing name or unsupported image"
// @Failure 413 {object} APIResponse "Image exceeds the upload ceiling"
// @Security CookieAuth
// @Router /prestation [post]
func (h *PrestationHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	input := service.CreatePrestationInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if headers := form.File["bannerImage"]; len(headers) > 0 {
		input.BannerImage, err = readFormFile(headers[0])
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read bannerImage")
			return
		}
	}
	input.Gallery, err = readFormFiles(form.File["otherImage"])
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read otherImage files")
		return
	}

	p, err := h.prestationService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, p)
}

// Update handles PUT /api/prestation/:id
func (h *PrestationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	input := service.UpdatePrestationInput{
		Name:          formValue(form, "name"),
		Description:   formValue(form, "description"),
		DeletedImages: form.Value["deletedImages"],
	}

	if headers := form.File["bannerImage"]; len(headers) > 0 {
		input.BannerImage, err = readFormFile(headers[0])
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read bannerImage")
			return
		}
	}
	input.Gallery, err = readFormFiles(form.File["otherImage"])
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read otherImage files")
		return
	}

	p, err := h.prestationService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Delete handles DELETE /api/prestation/:id
func (h *PrestationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.prestationService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "prestation deleted"})
}

// RemoveGalleryImage handles DELETE /api/prestation/:id/other-image?imageUrl=...
func (h *PrestationHandler) RemoveGalleryImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.prestationService.RemoveGalleryImage(c.Request.Context(), id, c.Query("imageUrl"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}
