package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Lead statuses. A lead moves forward only: new leads get contacted,
// contacted leads end up qualified or closed.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusClosed    = "closed"
)

type Lead struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Email      string       `gorm:"not null;uniqueIndex" json:"email"`
	Name       string       `json:"name,omitempty"`
	Note       string       `gorm:"type:text" json:"note,omitempty"`
	SourcePage string       `gorm:"column:source_page" json:"source_page,omitempty"`
	Status     string       `gorm:"not null;default:new;index" json:"status"`
	TouchCount int          `gorm:"not null;default:1" json:"touch_count"`
	LastSeenAt time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP" json:"last_seen_at"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// allowedTransitions is the forward-only status graph.
var allowedTransitions = map[string][]string{
	StatusNew:       {StatusContacted, StatusClosed},
	StatusContacted: {StatusQualified, StatusClosed},
	StatusQualified: {StatusClosed},
	StatusClosed:    {},
}

// CanTransition reports whether a lead may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
