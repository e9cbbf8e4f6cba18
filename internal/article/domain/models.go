package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Article struct {
	ID            snowflake.ID               `gorm:"primaryKey" json:"id"`
	Slug          string                     `gorm:"not null;uniqueIndex" json:"slug"`
	Title         string                     `gorm:"not null" json:"title"`
	Excerpt       string                     `json:"excerpt,omitempty"`
	Body          string                     `gorm:"type:text" json:"body"`
	CoverImageURL string                     `gorm:"column:cover_image_url" json:"cover_image_url,omitempty"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags,omitempty"`
	Published     bool                       `gorm:"not null;default:false;index" json:"published"`
	PublishedAt   *time.Time                 `json:"published_at,omitempty"`
	CreatedAt     time.Time                  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Article) TableName() string { return "articles" }
