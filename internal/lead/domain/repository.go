package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, lead *Lead) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Lead, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Lead, error)
	List(ctx context.Context, db *gorm.DB, filter ListLeadFilter, page pagination.Pagination) ([]*Lead, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
}

type ListLeadFilter struct {
	Status string
}
