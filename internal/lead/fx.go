package lead

import (
	"github.com/amanahworks/folio/internal/lead/repository"
	"github.com/amanahworks/folio/internal/lead/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lead.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
