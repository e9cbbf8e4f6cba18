package service

import (
	"context"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/article/domain"
	"github.com/amanahworks/folio/pkg/db"
	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("article.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateArticleRequest) (domain.Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Article{}, domain.ErrInvalidTitle
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return domain.Article{}, domain.ErrInvalidBody
	}

	articleSlug := strings.TrimSpace(req.Slug)
	if articleSlug == "" {
		articleSlug = slug.Make(title)
	} else {
		articleSlug = slug.Make(articleSlug)
	}

	now := time.Now().UTC()
	article := domain.Article{
		ID:            s.genID.Generate(),
		Slug:          articleSlug,
		Title:         title,
		Excerpt:       strings.TrimSpace(req.Excerpt),
		Body:          body,
		CoverImageURL: strings.TrimSpace(req.CoverImageURL),
		Tags:          datatypes.NewJSONSlice(normalizeTags(req.Tags)),
		Published:     req.Published,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Published {
		article.PublishedAt = &now
	}

	if err := s.repo.Insert(ctx, s.db, &article); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Article{}, domain.ErrSlugTaken
		}
		return domain.Article{}, err
	}

	s.log.Info("article created",
		zap.String("article_id", article.ID.String()),
		zap.String("slug", article.Slug))
	return article, nil
}

func (s *Service) GetBySlug(ctx context.Context, rawSlug string, includeUnpublished bool) (domain.Article, error) {
	value := strings.TrimSpace(rawSlug)
	if value == "" {
		return domain.Article{}, domain.ErrNotFound
	}

	article, err := s.repo.FindBySlug(ctx, s.db, value)
	if err != nil {
		return domain.Article{}, err
	}
	if !article.Published && !includeUnpublished {
		return domain.Article{}, domain.ErrNotFound
	}
	return *article, nil
}

func (s *Service) List(ctx context.Context, req domain.ListArticleRequest) (domain.ListArticleResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	items, err := s.repo.List(ctx, s.db, domain.ListArticleFilter{
		PublishedOnly: req.PublishedOnly,
		Tag:           strings.TrimSpace(req.Tag),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListArticleResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(article *domain.Article) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        article.ID.String(),
			CreatedAt: article.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		articles = append(articles, *item)
	}

	resp := domain.ListArticleResponse{Articles: articles}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, rawID string, req domain.UpdateArticleRequest) (domain.Article, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Article{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.Article{}, domain.ErrInvalidTitle
		}
		fields["title"] = title
	}
	if req.Slug != nil {
		fields["slug"] = slug.Make(strings.TrimSpace(*req.Slug))
	}
	if req.Excerpt != nil {
		fields["excerpt"] = strings.TrimSpace(*req.Excerpt)
	}
	if req.Body != nil {
		body := strings.TrimSpace(*req.Body)
		if body == "" {
			return domain.Article{}, domain.ErrInvalidBody
		}
		fields["body"] = body
	}
	if req.CoverImageURL != nil {
		fields["cover_image_url"] = strings.TrimSpace(*req.CoverImageURL)
	}
	if req.Tags != nil {
		fields["tags"] = datatypes.NewJSONSlice(normalizeTags(*req.Tags))
	}

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Article{}, domain.ErrSlugTaken
		}
		return domain.Article{}, err
	}

	article, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Article{}, err
	}
	return *article, nil
}

func (s *Service) SetPublished(ctx context.Context, rawID string, published bool) (domain.Article, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Article{}, err
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"published":  published,
		"updated_at": now,
	}
	if published {
		fields["published_at"] = &now
	}

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.Article{}, err
	}

	article, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Article{}, err
	}
	return *article, nil
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

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
