package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aivanta-site/internal/contact"
	"aivanta-site/internal/pages"
	"aivanta-site/internal/sections"
	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/validator"
)

// SubmitContact handles the intake form posted without scripts and answers
// with the home page showing the confirmation or the inline error.
func (h *TemplateHandler) SubmitContact(c *gin.Context) {
	var sub contact.Submission
	bindErr := c.ShouldBind(&sub)
	sub.Token = normalizeToken(sub.Token)

	rctx := h.renderContext(c, nil)
	rctx.Path = "/"
	rctx.Query = url.Values{}

	if bindErr != nil {
		rctx.Contact = sections.ContactView{
			Token:  sub.Token,
			Status: contact.StatusIdle,
			Values: sub,
			Errors: fieldErrors(bindErr),
		}
		h.renderPage(c, http.StatusUnprocessableEntity, pages.KindHome, rctx)
		return
	}

	if h.contact == nil {
		rctx.Contact = sections.ContactView{Token: sub.Token, Status: contact.StatusError, Values: sub}
		h.renderPage(c, http.StatusServiceUnavailable, pages.KindHome, rctx)
		return
	}

	if sub.Token == "" {
		sub.Token = h.contact.NewToken()
	}

	status, err := h.contact.Submit(c.Request.Context(), sub)
	view := sections.ContactView{Token: sub.Token, Status: status, Values: sub}

	if errors.Is(err, contact.ErrInvalidSubmission) {
		view.Status = contact.StatusIdle
		view.Errors = fieldErrors(err)
		rctx.Contact = view
		h.renderPage(c, http.StatusUnprocessableEntity, pages.KindHome, rctx)
		return
	}

	switch {
	case err == nil, errors.Is(err, contact.ErrAlreadySent):
		view.Status = contact.StatusSent
	case errors.Is(err, contact.ErrSubmissionInFlight):
		view.Status = contact.StatusSending
	default:
		logger.FromContext(c.Request.Context()).WithError(err).Warn("Contact form shown with error")
		view.Status = contact.StatusError
	}

	rctx.Contact = view
	h.renderPage(c, http.StatusOK, pages.KindHome, rctx)
}

// ContactHandler serves the JSON intake endpoint used by the enhanced form.
type ContactHandler struct {
	service      *contact.Service
	contactEmail string
}

func NewContactHandler(service *contact.Service, contactEmail string) *ContactHandler {
	return &ContactHandler{service: service, contactEmail: contactEmail}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	if h == nil || h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": contact.StatusError, "error": "contact service unavailable"})
		return
	}

	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": contact.StatusError,
			"error":  "invalid submission",
			"fields": fieldErrors(err),
		})
		return
	}
	sub.Token = normalizeToken(sub.Token)
	if sub.Token == "" {
		sub.Token = h.service.NewToken()
	}

	_, err := h.service.Submit(c.Request.Context(), sub)
	switch {
	case errors.Is(err, contact.ErrInvalidSubmission):
		c.JSON(http.StatusBadRequest, gin.H{
			"status": contact.StatusError,
			"error":  "invalid submission",
			"fields": fieldErrors(err),
		})
	case err == nil, errors.Is(err, contact.ErrAlreadySent):
		c.JSON(http.StatusOK, gin.H{"status": contact.StatusSent, "token": sub.Token})
	case errors.Is(err, contact.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"status": contact.StatusSending, "token": sub.Token})
	case errors.Is(err, contact.ErrFormDiscarded):
		c.JSON(http.StatusGone, gin.H{"status": contact.StatusIdle})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"status":   contact.StatusError,
			"token":    sub.Token,
			"fallback": h.contactEmail,
		})
	}
}

// Discard drops a form the visitor navigated away from.
func (h *ContactHandler) Discard(c *gin.Context) {
	if h == nil || h.service == nil {
		c.Status(http.StatusNoContent)
		return
	}
	if token := normalizeToken(c.Param("token")); token != "" {
		h.service.Discard(token)
	}
	c.Status(http.StatusNoContent)
}

// normalizeToken accepts only well-formed form tokens.
func normalizeToken(token string) string {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return ""
	}
	return parsed.String()
}

func fieldErrors(err error) map[string]string {
	fields := validator.FieldErrors(err)
	if len(fields) == 0 {
		return map[string]string{"form": "invalid"}
	}
	return fields
}
