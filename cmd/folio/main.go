package main

import (
	"os"
	"strconv"

	"github.com/amanahworks/folio/internal/config"
	"github.com/amanahworks/folio/internal/logger"
	"github.com/amanahworks/folio/internal/migration"
	"github.com/amanahworks/folio/internal/observability"
	"github.com/amanahworks/folio/internal/seed"
	"github.com/amanahworks/folio/internal/server"
	"github.com/amanahworks/folio/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}

// newSnowflakeNode builds the id generator. SNOWFLAKE_NODE_ID must differ
// per replica when more than one instance writes to the same database.
func newSnowflakeNode() (*snowflake.Node, error) {
	nodeID := int64(1)
	if raw := os.Getenv("SNOWFLAKE_NODE_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		nodeID = parsed
	}
	return snowflake.NewNode(nodeID)
}
