package testimonial

import (
	"github.com/amanahworks/folio/internal/testimonial/repository"
	"github.com/amanahworks/folio/internal/testimonial/service"
	"go.uber.org/fx"
)

var Module = fx.Module("testimonial.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
