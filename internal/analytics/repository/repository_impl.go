package repository

import (
	"context"

	"github.com/amanahworks/folio/internal/analytics/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) IncrementView(ctx context.Context, db *gorm.DB, row *domain.PageViewDaily) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]any{
			"views":      gorm.Expr("page_views_daily.views + 1"),
			"updated_at": row.UpdatedAt,
		}),
	}).Create(row).Error
}

func (r *repo) TopPaths(ctx context.Context, db *gorm.DB, fromDay, toDay string, limit int) ([]domain.PathTotal, error) {
	var totals []domain.PathTotal
	err := db.WithContext(ctx).
		Model(&domain.PageViewDaily{}).
		Select("path, SUM(views) AS views").
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Group("path").
		Order("views desc").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
