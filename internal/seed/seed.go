// Package seed bootstraps a first local account so a fresh deployment can
// log in before any OAuth provider is configured.
package seed

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	"github.com/amanahworks/folio/internal/auth/password"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureBootstrapAdmin creates a local user from BOOTSTRAP_ADMIN_EMAIL and
// BOOTSTRAP_ADMIN_PASSWORD when no user with that email exists yet. The
// account only gains admin rights if ADMIN_EMAIL points at the same
// address; seeding never grants authorization by itself.
func EnsureBootstrapAdmin(db *gorm.DB, genID *snowflake.Node) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_EMAIL")))
	rawPassword := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || rawPassword == "" {
		return nil
	}
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(rawPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user := authdomain.User{
			ID:           genID.Generate(),
			ExternalID:   uuid.NewString(),
			Provider:     "local",
			Email:        email,
			DisplayName:  "Admin",
			PasswordHash: &hashed,
			Metadata:     datatypes.JSONMap{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.Create(&user).Error
	})
}
