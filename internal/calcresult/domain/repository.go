package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, result *CalculatorResult) error
	List(ctx context.Context, db *gorm.DB, variant string, page pagination.Pagination) ([]*CalculatorResult, error)
}
