package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
)

type CreateContactRequest struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	ResumeURL string `json:"resume_url"`
	IPAddress string `json:"-"`
}

type ListContactRequest struct {
	PageToken  string
	PageSize   int32
	Kind       string
	UnreadOnly bool
}

type ListContactResponse struct {
	pagination.PageInfo
	Messages []ContactMessage `json:"messages"`
}

type Service interface {
	Create(ctx context.Context, req CreateContactRequest) (ContactMessage, error)
	List(ctx context.Context, req ListContactRequest) (ListContactResponse, error)
	MarkRead(ctx context.Context, id string) (ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
