package server

import (
	"net/http"

	leaddomain "github.com/amanahworks/folio/internal/lead/domain"
	"github.com/gin-gonic/gin"
)

// CaptureLead records a newsletter or download signup. Repeat submissions
// for the same email touch the existing lead instead of failing.
func (s *Server) CaptureLead(c *gin.Context) {
	if !s.limiter.Allow(c.Request.Context(), "lead", c.ClientIP()) {
		s.metrics.RecordFormSubmission("lead", "throttled")
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	var req leaddomain.CaptureLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.RecordFormSubmission("lead", "rejected")
		AbortWithError(c, invalidRequestError())
		return
	}

	leadRecord, err := s.leadsvc.Capture(c.Request.Context(), req)
	if err != nil {
		s.metrics.RecordFormSubmission("lead", "rejected")
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordFormSubmission("lead", "accepted")
	c.JSON(http.StatusCreated, leadRecord)
}

func (s *Server) ListLeads(c *gin.Context) {
	pageSize, err := parsePageSize(c.Query("page_size"))
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "page_size must be a positive integer"))
		return
	}

	resp, err := s.leadsvc.List(c.Request.Context(), leaddomain.ListLeadRequest{
		PageToken: c.Query("page_token"),
		PageSize:  pageSize,
		Status:    c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type transitionLeadRequest struct {
	Status string `json:"status"`
}

func (s *Server) TransitionLead(c *gin.Context) {
	var req transitionLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	leadRecord, err := s.leadsvc.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, leadRecord)
}
