package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Testimonial struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Author       string       `gorm:"not null" json:"author"`
	Role         string       `json:"role,omitempty"`
	Company      string       `json:"company,omitempty"`
	Quote        string       `gorm:"type:text;not null" json:"quote"`
	AvatarURL    string       `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	DisplayOrder int          `gorm:"not null;default:0;index" json:"display_order"`
	// No gorm default here: a default tag makes gorm drop the zero value
	// from the INSERT, which would silently flip hidden rows to visible.
	// The service sets Visible explicitly on every create.
	Visible   bool      `gorm:"not null;index" json:"visible"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
