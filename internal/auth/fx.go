package auth

import (
	authconfig "github.com/amanahworks/folio/internal/auth/config"
	"github.com/amanahworks/folio/internal/auth/oauth"
	"github.com/amanahworks/folio/internal/auth/repository"
	"github.com/amanahworks/folio/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(authconfig.ParseAuthProvidersFromEnv),
	fx.Provide(authconfig.BuildAuthProviderRegistry),
	fx.Provide(oauth.NewService),
	fx.Invoke(ensureAuthProviderRegistry),
)

func ensureAuthProviderRegistry(_ authconfig.AuthProviderRegistry) {}
