package service

import (
	"context"
	"strings"
	"time"

	"github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
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
		log:   p.Log.Named("calcresult.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Save(ctx context.Context, req domain.SaveResultRequest) (domain.CalculatorResult, error) {
	variant := strings.ToLower(strings.TrimSpace(req.Variant))
	if !domain.ValidVariant(variant) {
		return domain.CalculatorResult{}, domain.ErrInvalidVariant
	}

	inputs := req.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}
	summary := req.Summary
	if summary == nil {
		summary = map[string]any{}
	}

	result := domain.CalculatorResult{
		ID:        s.genID.Generate(),
		Variant:   variant,
		UserID:    req.UserID,
		Inputs:    datatypes.JSONMap(inputs),
		Summary:   datatypes.JSONMap(summary),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &result); err != nil {
		return domain.CalculatorResult{}, err
	}
	return result, nil
}

func (s *Service) List(ctx context.Context, req domain.ListResultRequest) (domain.ListResultResponse, error) {
	variant := strings.ToLower(strings.TrimSpace(req.Variant))
	if variant != "" && !domain.ValidVariant(variant) {
		return domain.ListResultResponse{}, domain.ErrInvalidVariant
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	items, err := s.repo.List(ctx, s.db, variant, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListResultResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(result *domain.CalculatorResult) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        result.ID.String(),
			CreatedAt: result.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	results := make([]domain.CalculatorResult, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		results = append(results, *item)
	}

	resp := domain.ListResultResponse{Results: results}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}
