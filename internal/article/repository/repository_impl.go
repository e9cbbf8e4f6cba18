package repository

import (
	"context"
	"errors"

	"github.com/amanahworks/folio/internal/article/domain"
	"github.com/amanahworks/folio/pkg/db/option"
	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, article *domain.Article) error {
	return db.WithContext(ctx).Create(article).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Article, error) {
	var article domain.Article
	err := db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Article, error) {
	var article domain.Article
	err := db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListArticleFilter, page pagination.Pagination) ([]*domain.Article, error) {
	var articles []*domain.Article
	stmt := db.WithContext(ctx).Model(&domain.Article{})
	if filter.PublishedOnly {
		stmt = stmt.Where("published = ?", true)
	}
	if filter.Tag != "" {
		// JSON containment differs per dialect; a LIKE over the encoded
		// array is portable and the tag list is tiny.
		stmt = stmt.Where(`tags LIKE ?`, `%"`+filter.Tag+`"%`)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	tx := db.WithContext(ctx).Model(&domain.Article{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	tx := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Article{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
