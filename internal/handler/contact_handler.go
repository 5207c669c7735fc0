package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renova/internal/domain"
	"renova/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), msg); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "message sent"})
}
