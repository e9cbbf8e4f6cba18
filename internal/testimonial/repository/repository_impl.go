package repository

import (
	"context"
	"errors"

	"github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, testimonial *domain.Testimonial) error {
	return db.WithContext(ctx).Create(testimonial).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Testimonial, error) {
	var testimonial domain.Testimonial
	err := db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, visibleOnly bool) ([]*domain.Testimonial, error) {
	var testimonials []*domain.Testimonial
	stmt := db.WithContext(ctx).Model(&domain.Testimonial{})
	if visibleOnly {
		stmt = stmt.Where("visible = ?", true)
	}
	err := stmt.
		Order("display_order asc, created_at asc").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	tx := db.WithContext(ctx).Model(&domain.Testimonial{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	tx := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Testimonial{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
