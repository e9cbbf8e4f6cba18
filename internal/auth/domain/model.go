// Package domain contains core types for authentication and sessions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// User represents a site account. OAuth accounts carry the provider subject
// in ExternalID and have no password hash; local accounts get a generated
// ExternalID and always have one.
type User struct {
	ID           snowflake.ID      `gorm:"primaryKey"`
	ExternalID   string            `gorm:"column:external_id;type:text;not null;uniqueIndex"`
	Provider     string            `gorm:"column:provider;type:text;not null"`
	Email        string            `gorm:"column:email;type:text;not null;uniqueIndex"`
	DisplayName  string            `gorm:"column:display_name;type:text"`
	Picture      string            `gorm:"column:picture;type:text"`
	PasswordHash *string           `gorm:"column:password_hash;type:text"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session represents a persisted login session. Only the sha256 of the
// session token is stored; the raw value lives in the cookie.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"column:user_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }
