package contact

import (
	"github.com/amanahworks/folio/internal/contact/repository"
	"github.com/amanahworks/folio/internal/contact/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contact.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
