package auth

import (
	"context"
	"log/slog"

	"huddle/config"
	"huddle/internal/domain/constants"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/infra/auth/firebase"

	"go.uber.org/fx"
)

// ResolverParams defines the dependencies of NewIdentityResolver.
type ResolverParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityResolver selects the credential resolver named by auth.provider; JWT is the default.
func NewIdentityResolver(params ResolverParams) (service.IdentityResolver, error) {
	provider := constants.AuthProviderJWT
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	params.Logger.Info("Identity resolver selected", slog.String("provider", provider))

	switch provider {
	case constants.AuthProviderFirebase:
		return firebase.NewVerifier(params.Ctx, params.Config.Firebase)
	case constants.AuthProviderJWT:
		svc, err := NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}

		return svc, nil
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}
