package service

import (
	"context"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("testimonial.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTestimonialRequest) (domain.Testimonial, error) {
	author := strings.TrimSpace(req.Author)
	if author == "" {
		return domain.Testimonial{}, domain.ErrInvalidAuthor
	}
	quote := strings.TrimSpace(req.Quote)
	if quote == "" {
		return domain.Testimonial{}, domain.ErrInvalidQuote
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	now := time.Now().UTC()
	testimonial := domain.Testimonial{
		ID:           s.genID.Generate(),
		Author:       author,
		Role:         strings.TrimSpace(req.Role),
		Company:      strings.TrimSpace(req.Company),
		Quote:        quote,
		AvatarURL:    strings.TrimSpace(req.AvatarURL),
		DisplayOrder: req.DisplayOrder,
		Visible:      visible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &testimonial); err != nil {
		return domain.Testimonial{}, err
	}
	return testimonial, nil
}

func (s *Service) List(ctx context.Context, visibleOnly bool) ([]domain.Testimonial, error) {
	items, err := s.repo.List(ctx, s.db, visibleOnly)
	if err != nil {
		return nil, err
	}

	testimonials := make([]domain.Testimonial, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		testimonials = append(testimonials, *item)
	}
	return testimonials, nil
}

func (s *Service) Update(ctx context.Context, rawID string, req domain.UpdateTestimonialRequest) (domain.Testimonial, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Testimonial{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.Author != nil {
		author := strings.TrimSpace(*req.Author)
		if author == "" {
			return domain.Testimonial{}, domain.ErrInvalidAuthor
		}
		fields["author"] = author
	}
	if req.Role != nil {
		fields["role"] = strings.TrimSpace(*req.Role)
	}
	if req.Company != nil {
		fields["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Quote != nil {
		quote := strings.TrimSpace(*req.Quote)
		if quote == "" {
			return domain.Testimonial{}, domain.ErrInvalidQuote
		}
		fields["quote"] = quote
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = strings.TrimSpace(*req.AvatarURL)
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.Visible != nil {
		fields["visible"] = *req.Visible
	}

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.Testimonial{}, err
	}

	testimonial, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Testimonial{}, err
	}
	return *testimonial, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
