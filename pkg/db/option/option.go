// Package option builds reusable gorm query modifiers.
package option

import (
	"github.com/amanahworks/folio/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement.
type Option interface {
	Apply(*gorm.DB) *gorm.DB
}

type optionFunc func(*gorm.DB) *gorm.DB

func (f optionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// ApplyPagination applies a keyset cursor and fetches one row past the
// page size so the caller can detect a further page. Expects the query
// to order by created_at desc, id desc.
func ApplyPagination(page pagination.Pagination) Option {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		limit := page.PageSize
		if limit <= 0 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}

		if page.PageToken != "" {
			cursor, err := pagination.DecodeCursor(page.PageToken)
			if err == nil && cursor != nil && cursor.CreatedAt != "" {
				stmt = stmt.Where(
					"(created_at < ?) OR (created_at = ? AND id < ?)",
					cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
				)
			}
		}

		return stmt.Limit(limit + 1)
	})
}
