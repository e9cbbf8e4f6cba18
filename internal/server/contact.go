package server

import (
	"net/http"

	contactdomain "github.com/amanahworks/folio/internal/contact/domain"
	"github.com/gin-gonic/gin"
)

// SubmitContact accepts the public contact and career forms. Submissions
// are throttled per client IP before they reach the service.
func (s *Server) SubmitContact(c *gin.Context) {
	if !s.limiter.Allow(c.Request.Context(), "contact", c.ClientIP()) {
		s.metrics.RecordFormSubmission("contact", "throttled")
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	var req contactdomain.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.RecordFormSubmission("contact", "rejected")
		AbortWithError(c, invalidRequestError())
		return
	}
	req.IPAddress = c.ClientIP()

	message, err := s.contactsvc.Create(c.Request.Context(), req)
	if err != nil {
		s.metrics.RecordFormSubmission("contact", "rejected")
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordFormSubmission("contact", "accepted")
	c.JSON(http.StatusCreated, message)
}

func (s *Server) ListContactMessages(c *gin.Context) {
	pageSize, err := parsePageSize(c.Query("page_size"))
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "page_size must be a positive integer"))
		return
	}

	unread, err := parseOptionalBool(c.Query("unread"))
	if err != nil {
		AbortWithError(c, newValidationError("unread", "invalid_bool", "unread must be true or false"))
		return
	}

	resp, err := s.contactsvc.List(c.Request.Context(), contactdomain.ListContactRequest{
		PageToken:  c.Query("page_token"),
		PageSize:   pageSize,
		Kind:       c.Query("kind"),
		UnreadOnly: unread != nil && *unread,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) MarkContactMessageRead(c *gin.Context) {
	message, err := s.contactsvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (s *Server) DeleteContactMessage(c *gin.Context) {
	if err := s.contactsvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
