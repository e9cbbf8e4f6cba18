package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
)

type CreateArticleRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Body          string   `json:"body"`
	CoverImageURL string   `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
}

// UpdateArticleRequest uses pointer fields so absent keys leave the
// stored value untouched.
type UpdateArticleRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Body          *string   `json:"body"`
	CoverImageURL *string   `json:"cover_image_url"`
	Tags          *[]string `json:"tags"`
}

type ListArticleRequest struct {
	PageToken     string
	PageSize      int32
	PublishedOnly bool
	Tag           string
}

type ListArticleResponse struct {
	pagination.PageInfo
	Articles []Article `json:"articles"`
}

type Service interface {
	Create(ctx context.Context, req CreateArticleRequest) (Article, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (Article, error)
	List(ctx context.Context, req ListArticleRequest) (ListArticleResponse, error)
	Update(ctx context.Context, id string, req UpdateArticleRequest) (Article, error)
	SetPublished(ctx context.Context, id string, published bool) (Article, error)
	Delete(ctx context.Context, id string) error
}
