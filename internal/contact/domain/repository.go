package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, message *ContactMessage) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ContactMessage, error)
	List(ctx context.Context, db *gorm.DB, filter ListContactFilter, page pagination.Pagination) ([]*ContactMessage, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListContactFilter struct {
	Kind       string
	UnreadOnly bool
}
