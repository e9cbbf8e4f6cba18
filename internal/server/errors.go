package server

import (
	"errors"
	"net/http"
	"strings"

	analyticsdomain "github.com/amanahworks/folio/internal/analytics/domain"
	articledomain "github.com/amanahworks/folio/internal/article/domain"
	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	authoauth "github.com/amanahworks/folio/internal/auth/oauth"
	calcdomain "github.com/amanahworks/folio/internal/calcresult/domain"
	contactdomain "github.com/amanahworks/folio/internal/contact/domain"
	"github.com/amanahworks/folio/internal/financecalc"
	leaddomain "github.com/amanahworks/folio/internal/lead/domain"
	testimonialdomain "github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal_error")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrTooManyRequests = errors.New("too_many_requests")

	// ErrAdminNotConfigured means ADMIN_EMAIL is unset. Admin routes fail
	// closed with a distinct type so operators can tell misconfiguration
	// apart from an actual permission denial.
	ErrAdminNotConfigured = errors.New("admin_not_configured")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionNotFound),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked),
		errors.Is(err, authdomain.ErrMissingEmail),
		errors.Is(err, authoauth.ErrMissingEmail),
		errors.Is(err, authoauth.ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrAdminNotConfigured):
		return http.StatusForbidden, errorPayload{
			Type:    "admin_not_configured",
			Message: "admin access is not configured",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, authdomain.ErrUserExists),
		errors.Is(err, articledomain.ErrSlugTaken):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "too_many_requests",
			Message: "too many requests",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, authdomain.ErrWeakPassword),
		errors.Is(err, authoauth.ErrInvalidRequest),
		errors.Is(err, financecalc.ErrInvalidInput):
		return true
	case errors.Is(err, articledomain.ErrInvalidID),
		errors.Is(err, articledomain.ErrInvalidTitle),
		errors.Is(err, articledomain.ErrInvalidBody),
		errors.Is(err, testimonialdomain.ErrInvalidID),
		errors.Is(err, testimonialdomain.ErrInvalidAuthor),
		errors.Is(err, testimonialdomain.ErrInvalidQuote),
		errors.Is(err, contactdomain.ErrInvalidID),
		errors.Is(err, contactdomain.ErrInvalidKind),
		errors.Is(err, contactdomain.ErrInvalidName),
		errors.Is(err, contactdomain.ErrInvalidEmail),
		errors.Is(err, contactdomain.ErrInvalidBody),
		errors.Is(err, leaddomain.ErrInvalidID),
		errors.Is(err, leaddomain.ErrInvalidEmail),
		errors.Is(err, leaddomain.ErrInvalidStatus),
		errors.Is(err, leaddomain.ErrInvalidTransition),
		errors.Is(err, calcdomain.ErrInvalidVariant),
		errors.Is(err, analyticsdomain.ErrInvalidPath),
		errors.Is(err, analyticsdomain.ErrInvalidRange):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, authoauth.ErrProviderNotFound),
		errors.Is(err, authoauth.ErrInvalidProvider),
		errors.Is(err, articledomain.ErrNotFound),
		errors.Is(err, testimonialdomain.ErrNotFound),
		errors.Is(err, contactdomain.ErrNotFound),
		errors.Is(err, leaddomain.ErrNotFound),
		errors.Is(err, calcdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, authoauth.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, authdomain.ErrWeakPassword):
		return "weak_password"
	case errors.Is(err, financecalc.ErrInvalidInput):
		return "invalid_calculator_input"
	default:
		return strings.ReplaceAll(err.Error(), " ", "_")
	}
}

func validationErrorField(code string) string {
	switch code {
	case "invalid_request":
		return "request"
	case "weak_password":
		return "password"
	case "invalid_calculator_input":
		return "inputs"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	case "weak_password":
		return "password does not meet the minimum length"
	default:
		return "invalid value"
	}
}
