package server

import (
	"net/http"

	calcdomain "github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/internal/financecalc"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type CalculatorRequest struct {
	Principal  float64 `json:"principal"`
	TermMonths int     `json:"term_months"`
	Save       bool    `json:"save"`

	// AnnualRatePercent drives the rate-based variants. The markup
	// variant takes MarkupPercent instead; a flat markup is not a rate
	// and the two must not share a field name.
	AnnualRatePercent        float64 `json:"annual_rate_percent"`
	MarkupPercent            float64 `json:"markup_percent"`
	InitialOwnerSharePercent float64 `json:"initial_owner_share_percent"`
}

type CalculatorResponse struct {
	Variant  string               `json:"variant"`
	Summary  map[string]any       `json:"summary"`
	Schedule *financecalc.Schedule `json:"schedule"`
	SavedID  string               `json:"saved_id,omitempty"`
}

// RunCalculator computes a payment schedule for the named variant. Inputs
// are bounded by the hot-reloadable calculator config. When save is set
// the summary is persisted, attributed to the session user if one exists.
func (s *Server) RunCalculator(c *gin.Context) {
	variant := c.Param("variant")
	if !calcdomain.ValidVariant(variant) {
		AbortWithError(c, calcdomain.ErrInvalidVariant)
		return
	}

	var req CalculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	bounds := s.calcCfg.Current()
	if req.Principal > bounds.MaxPrincipal ||
		req.TermMonths > bounds.MaxTermMonths ||
		req.AnnualRatePercent > bounds.MaxRatePercent ||
		req.MarkupPercent > bounds.MaxRatePercent {
		AbortWithError(c, newValidationError("inputs", "out_of_bounds", "input exceeds the configured maximum"))
		return
	}

	schedule, err := computeSchedule(variant, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summary := map[string]any{
		"monthly_payment": financecalc.Round2(schedule.MonthlyPayment),
		"total_payable":   financecalc.Round2(schedule.TotalPayable),
		"total_rent":      financecalc.Round2(schedule.TotalRent),
		"term_months":     req.TermMonths,
	}

	resp := CalculatorResponse{
		Variant:  variant,
		Summary:  summary,
		Schedule: schedule,
	}

	if req.Save {
		saved, err := s.calcresultsvc.Save(c.Request.Context(), calcdomain.SaveResultRequest{
			Variant: variant,
			UserID:  s.sessionUserID(c),
			Inputs:  calculatorInputs(variant, req),
			Summary: summary,
		})
		if err != nil {
			AbortWithError(c, err)
			return
		}
		resp.SavedID = saved.ID.String()
	}

	c.JSON(http.StatusOK, resp)
}

func computeSchedule(variant string, req CalculatorRequest) (*financecalc.Schedule, error) {
	switch variant {
	case calcdomain.VariantLease:
		return financecalc.LeaseSchedule(req.Principal, req.AnnualRatePercent, req.TermMonths)
	case calcdomain.VariantDiminishingOwnership:
		return financecalc.DiminishingOwnershipSchedule(req.Principal, req.AnnualRatePercent, req.TermMonths, req.InitialOwnerSharePercent)
	case calcdomain.VariantMarkup:
		return financecalc.MarkupInstallment(req.Principal, req.MarkupPercent, req.TermMonths)
	default:
		return nil, calcdomain.ErrInvalidVariant
	}
}

// calculatorInputs records only the fields the variant actually consumed.
func calculatorInputs(variant string, req CalculatorRequest) map[string]any {
	inputs := map[string]any{
		"principal":   req.Principal,
		"term_months": req.TermMonths,
	}
	switch variant {
	case calcdomain.VariantLease:
		inputs["annual_rate_percent"] = req.AnnualRatePercent
	case calcdomain.VariantDiminishingOwnership:
		inputs["annual_rate_percent"] = req.AnnualRatePercent
		inputs["initial_owner_share_percent"] = req.InitialOwnerSharePercent
	case calcdomain.VariantMarkup:
		inputs["markup_percent"] = req.MarkupPercent
	}
	return inputs
}

// sessionUserID resolves the cookie session to a user id without requiring
// one. Calculator runs are anonymous unless the visitor is logged in.
func (s *Server) sessionUserID(c *gin.Context) *snowflake.ID {
	rawToken, ok := s.sessions.ReadToken(c)
	if !ok {
		return nil
	}
	session, err := s.authsvc.Authenticate(c.Request.Context(), rawToken)
	if err != nil {
		return nil
	}
	userID := session.UserID
	return &userID
}

func (s *Server) ListCalculatorResults(c *gin.Context) {
	pageSize, err := parsePageSize(c.Query("page_size"))
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "page_size must be a positive integer"))
		return
	}

	resp, err := s.calcresultsvc.List(c.Request.Context(), calcdomain.ListResultRequest{
		PageToken: c.Query("page_token"),
		PageSize:  pageSize,
		Variant:   c.Query("variant"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
