package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/response"
	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(rg *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	rg.POST("/submit", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission and relays it by email:
// one notification to the business inbox, one auto-reply to the submitter.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form domain.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.contactUC.Submit(c.Request.Context(), &form); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thank you for your message! We'll get back to you within 24 hours.", nil)
}
