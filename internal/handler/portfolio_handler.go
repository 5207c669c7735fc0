package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"renova/internal/service"
)

// PortfolioHandler handles portfolio item endpoints.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List handles GET /api/portfolio
// @Summary List portfolio items
// @Tags portfolio
// @Produce json
// @Success 200 {object} APIResponse "All portfolio items, newest first"
// @Router /portfolio [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// GetByID handles GET /api/portfolio/:id
func (h *PortfolioHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.portfolioService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Create handles POST /api/portfolio
// @Summary Create a portfolio item
// @Description Create a portfolio item from a multipart form with image uploads
// @Tags portfolio
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param altText formData string false "Alt text for the main image"
// @Param mainImage formData file true "Main image"
// @Param otherImage formData file false "Gallery images (repeatable)"
// @Success 201 {object} APIResponse "Created item with proxied image URLs"
// @Failure 400 {object} APIResponse "Missing title or unsupported image"
// @Failure 413 {object} APIResponse "Image exceeds the upload ceiling"
// @Security CookieAuth
// @Router /portfolio [post]
func (h *PortfolioHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	input := service.CreatePortfolioInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		AltText:     c.PostForm("altText"),
	}

	if headers := form.File["mainImage"]; len(headers) > 0 {
		input.MainImage, err = readFormFile(headers[0])
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read mainImage")
			return
		}
	}
	input.Gallery, err = readFormFiles(form.File["otherImage"])
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read otherImage files")
		return
	}

	item, err := h.portfolioService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// Update handles PUT /api/portfolio/:id
// Text fields absent from the form are left unchanged; a new mainImage file
// replaces the banner; otherImage files are appended after deletedImages
// entries are removed.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	input := service.UpdatePortfolioInput{
		Title:         formValue(form, "title"),
		Description:   formValue(form, "description"),
		AltText:       formValue(form, "altText"),
		DeletedImages: form.Value["deletedImages"],
	}

	if headers := form.File["mainImage"]; len(headers) > 0 {
		input.MainImage, err = readFormFile(headers[0])
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read mainImage")
			return
		}
	}
	input.Gallery, err = readFormFiles(form.File["otherImage"])
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "could not read otherImage files")
		return
	}

	item, err := h.portfolioService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/portfolio/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.portfolioService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "portfolio item deleted"})
}

// RemoveGalleryImage handles DELETE /api/portfolio/:id/other-image?imageUrl=...
func (h *PortfolioHandler) RemoveGalleryImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.portfolioService.RemoveGalleryImage(c.Request.Context(), id, c.Query("imageUrl"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// parseID reads the :id path parameter. Returns false if the value is not a
// positive integer (error response already written).
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return 0, false
	}
	return id, true
}
