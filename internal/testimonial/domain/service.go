package domain

import "context"

type CreateTestimonialRequest struct {
	Author       string `json:"author"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	Quote        string `json:"quote"`
	AvatarURL    string `json:"avatar_url"`
	DisplayOrder int    `json:"display_order"`
	Visible      *bool  `json:"visible"`
}

type UpdateTestimonialRequest struct {
	Author       *string `json:"author"`
	Role         *string `json:"role"`
	Company      *string `json:"company"`
	Quote        *string `json:"quote"`
	AvatarURL    *string `json:"avatar_url"`
	DisplayOrder *int    `json:"display_order"`
	Visible      *bool   `json:"visible"`
}

type Service interface {
	Create(ctx context.Context, req CreateTestimonialRequest) (Testimonial, error)
	List(ctx context.Context, visibleOnly bool) ([]Testimonial, error)
	Update(ctx context.Context, id string, req UpdateTestimonialRequest) (Testimonial, error)
	Delete(ctx context.Context, id string) error
}
