package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, testimonial *Testimonial) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Testimonial, error)
	List(ctx context.Context, db *gorm.DB, visibleOnly bool) ([]*Testimonial, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
