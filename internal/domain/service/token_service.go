package service

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens issued by this service.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// IdentityResolver turns a handshake or bearer credential into a user identity.
type IdentityResolver interface {
	// Resolve fails with ErrUnauthenticated when the credential is missing, malformed or expired.
	Resolve(ctx context.Context, credential string) (*entity.Identity, error)
}

// TokenIssuer mints access tokens understood by the JWT IdentityResolver.
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}
