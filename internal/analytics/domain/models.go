package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// DayFormat keys the daily counter rows.
const DayFormat = "2006-01-02"

// PageViewDaily is one counter row per (day, path). Tracking upserts an
// increment; there is no per-hit row.
type PageViewDaily struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Day       string       `gorm:"not null;uniqueIndex:idx_page_views_day_path" json:"day"`
	Path      string       `gorm:"not null;uniqueIndex:idx_page_views_day_path" json:"path"`
	Views     int64        `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PageViewDaily) TableName() string { return "page_views_daily" }

// PathTotal is one row of the admin summary.
type PathTotal struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}
