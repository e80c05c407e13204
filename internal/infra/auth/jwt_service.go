// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strings"
	"time"

	"huddle/config"
	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	"huddle/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTTL = 24 * time.Hour

// JWTService verifies and mints HS256 access tokens carrying service.Claims.
type JWTService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	issuer       string        // Expected "iss"; empty disables the check.
	accessTTL    time.Duration // Time-to-live for issued tokens.
	now          func() time.Time
}

var (
	_ service.IdentityResolver = (*JWTService)(nil)
	_ service.TokenIssuer      = (*JWTService)(nil)
)

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	svc := &JWTService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
		now:          time.Now,
	}
	if cfg.Auth != nil {
		svc.issuer = cfg.Auth.Issuer
		if cfg.Auth.TokenTTL > 0 {
			svc.accessTTL = cfg.Auth.TokenTTL
		}
	}

	return svc, nil
}

// IssueToken signs an access token for userID.
func (s *JWTService) IssueToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Resolve accepts a raw token or a "Bearer <token>" value.
func (s *JWTService) Resolve(_ context.Context, credential string) (*entity.Identity, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if tokenString == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("missing token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...); err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token carries no user")
	}

	return &entity.Identity{UserID: userID, Provider: constants.AuthProviderJWT}, nil
}
