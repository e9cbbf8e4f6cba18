package server

import (
	"net/http"
	"strconv"
	"strings"

	analyticsdomain "github.com/amanahworks/folio/internal/analytics/domain"
	"github.com/gin-gonic/gin"
)

// TrackPageView counts one page view. Tracking failures never surface to
// the visitor; a bad path is the only rejected input.
func (s *Server) TrackPageView(c *gin.Context) {
	var req analyticsdomain.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.UserAgent = c.Request.UserAgent()

	if err := s.analyticssvc.Track(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
}

func (s *Server) AnalyticsSummary(c *gin.Context) {
	from, err := parseOptionalDate(c.Query("from"), false)
	if err != nil {
		AbortWithError(c, newValidationError("from", "invalid_time", "from must be an RFC3339 or YYYY-MM-DD date"))
		return
	}
	to, err := parseOptionalDate(c.Query("to"), true)
	if err != nil {
		AbortWithError(c, newValidationError("to", "invalid_time", "to must be an RFC3339 or YYYY-MM-DD date"))
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	summary, err := s.analyticssvc.Summary(c.Request.Context(), analyticsdomain.SummaryRequest{
		From:  from,
		To:    to,
		Limit: limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
