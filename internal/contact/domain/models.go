package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Kind separates general messages from career inquiries.
const (
	KindMessage = "message"
	KindCareer  = "career"
)

type ContactMessage struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Kind      string       `gorm:"not null;index" json:"kind"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `gorm:"not null" json:"email"`
	Subject   string       `json:"subject,omitempty"`
	Body      string       `gorm:"type:text;not null" json:"body"`
	ResumeURL string       `gorm:"column:resume_url" json:"resume_url,omitempty"`
	IPAddress string       `gorm:"column:ip_address" json:"-"`
	Read      bool         `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
