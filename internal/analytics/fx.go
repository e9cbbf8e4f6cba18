package analytics

import (
	"github.com/amanahworks/folio/internal/analytics/repository"
	"github.com/amanahworks/folio/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
