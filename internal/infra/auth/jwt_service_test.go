package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"huddle/config"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T, issuer string) *JWTService {
	cfg := &config.Config{Auth: &config.AuthConfig{Issuer: issuer, TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndResolve(t *testing.T) {
	svc := createTestJWTService(t, "huddle")

	token, err := svc.IssueToken("user-42")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	for _, credential := range []string{token, "Bearer " + token} {
		identity, err := svc.Resolve(context.Background(), credential)
		require.NoError(t, err)
		assert.Equal(t, "user-42", identity.UserID)
		assert.Equal(t, "jwt", identity.Provider)
	}
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_Rejections(t *testing.T) {
	svc := createTestJWTService(t, "huddle")
	ctx := context.Background()

	expired := createTestJWTService(t, "huddle")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.IssueToken("user-42")
	require.NoError(t, err)

	otherIssuer := createTestJWTService(t, "someone-else")
	foreignToken, err := otherIssuer.IssueToken("user-42")
	require.NoError(t, err)

	otherSecret := createTestJWTService(t, "huddle")
	otherSecret.accessSecret = []byte("a_completely_different_secret_value")
	forgedToken, err := otherSecret.IssueToken("user-42")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{UserID: "user-42"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"expired":      expiredToken,
		"wrong issuer": foreignToken,
		"wrong secret": forgedToken,
		"alg none":     noneToken,
	}

	for name, credential := range tests {
		t.Run(name, func(t *testing.T) {
			identity, err := svc.Resolve(ctx, credential)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestNewIdentityResolver_Selection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	resolver, err := NewIdentityResolver(ResolverParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &JWTService{}, resolver)

	cfg.Auth = &config.AuthConfig{Provider: "kerberos"}
	_, err = NewIdentityResolver(ResolverParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	assert.Error(t, err)

	cfg.Auth = &config.AuthConfig{Provider: "firebase"}
	_, err = NewIdentityResolver(ResolverParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	assert.Error(t, err, "firebase provider without firebase config")
}
