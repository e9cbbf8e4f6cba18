package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, article *Article) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Article, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Article, error)
	List(ctx context.Context, db *gorm.DB, filter ListArticleFilter, page pagination.Pagination) ([]*Article, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListArticleFilter struct {
	PublishedOnly bool
	Tag           string
}
