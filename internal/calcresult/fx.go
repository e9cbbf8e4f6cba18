package calcresult

import (
	"github.com/amanahworks/folio/internal/calcresult/repository"
	"github.com/amanahworks/folio/internal/calcresult/service"
	"go.uber.org/fx"
)

var Module = fx.Module("calcresult.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
