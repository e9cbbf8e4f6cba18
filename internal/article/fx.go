package article

import (
	"github.com/amanahworks/folio/internal/article/repository"
	"github.com/amanahworks/folio/internal/article/service"
	"go.uber.org/fx"
)

var Module = fx.Module("article.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
