package seed

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(func(db *gorm.DB, genID *snowflake.Node) error {
		return EnsureBootstrapAdmin(db, genID)
	}),
)
