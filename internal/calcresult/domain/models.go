package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Calculator variants.
const (
	VariantLease                = "lease"
	VariantDiminishingOwnership = "diminishing_ownership"
	VariantMarkup               = "markup"
)

// CalculatorResult is a persisted calculator run: the raw inputs and the
// rounded summary, both as JSON.
type CalculatorResult struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Variant   string            `gorm:"not null;index" json:"variant"`
	UserID    *snowflake.ID     `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Inputs    datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"inputs"`
	Summary   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"summary"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CalculatorResult) TableName() string { return "calculator_results" }

// ValidVariant reports whether the name maps to a calculator function.
func ValidVariant(variant string) bool {
	switch variant {
	case VariantLease, VariantDiminishingOwnership, VariantMarkup:
		return true
	default:
		return false
	}
}
