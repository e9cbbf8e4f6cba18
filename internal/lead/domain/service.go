package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
)

type CaptureLeadRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Note       string `json:"note"`
	SourcePage string `json:"source_page"`
}

type ListLeadRequest struct {
	PageToken string
	PageSize  int32
	Status    string
}

type ListLeadResponse struct {
	pagination.PageInfo
	Leads []Lead `json:"leads"`
}

type Service interface {
	// Capture records a new lead, or touches the existing row when the
	// email is already known.
	Capture(ctx context.Context, req CaptureLeadRequest) (Lead, error)
	List(ctx context.Context, req ListLeadRequest) (ListLeadResponse, error)
	Transition(ctx context.Context, id string, status string) (Lead, error)
}
