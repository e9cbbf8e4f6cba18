package repository

import (
	"context"

	"github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/pkg/db/option"
	"github.com/amanahworks/folio/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, result *domain.CalculatorResult) error {
	return db.WithContext(ctx).Create(result).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, variant string, page pagination.Pagination) ([]*domain.CalculatorResult, error) {
	var results []*domain.CalculatorResult
	stmt := db.WithContext(ctx).Model(&domain.CalculatorResult{})
	if variant != "" {
		stmt = stmt.Where("variant = ?", variant)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
