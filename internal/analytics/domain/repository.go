package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	IncrementView(ctx context.Context, db *gorm.DB, row *PageViewDaily) error
	TopPaths(ctx context.Context, db *gorm.DB, fromDay, toDay string, limit int) ([]PathTotal, error)
}
