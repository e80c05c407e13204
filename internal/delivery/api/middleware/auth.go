package middleware

import (
	"strings"

	deliverycontext "huddle/internal/delivery/context"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// tokenQueryParam lets browsers, which cannot set headers on a WebSocket handshake, pass the token.
const tokenQueryParam = "token"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Resolver service.IdentityResolver
}

// AuthMiddleware resolves the caller's identity for REST routes and the socket handshake.
type AuthMiddleware struct {
	resolver service.IdentityResolver
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{resolver: params.Resolver}
}

// Authenticate stores the resolved user ID on the echo context or fails with ErrUnauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := Credential(c)
		if credential == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("missing credentials")
		}

		identity, err := m.resolver.Resolve(c.Request().Context(), credential)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, identity.UserID)

		return next(c)
	}
}

// Credential returns the bearer token from the Authorization header, falling back to the token query param.
func Credential(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		return strings.TrimSpace(header)
	}

	return strings.TrimSpace(c.QueryParam(tokenQueryParam))
}

// GetUserID returns the user ID stored by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
