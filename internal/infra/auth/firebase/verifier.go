// Package firebase resolves Firebase ID tokens to identities.
package firebase

import (
	"context"
	"strings"

	"huddle/config"
	"huddle/internal/domain/constants"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	"huddle/internal/errors"

	firebasesdk "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of the Firebase auth client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type verifier struct {
	client tokenVerifier
}

// NewVerifier initializes the Firebase app and its auth client.
// Without a credentials path the SDK falls back to application default credentials.
func NewVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityResolver, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the firebase auth provider")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebasesdk.NewApp(ctx, &firebasesdk.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &verifier{client: client}, nil
}

func (v *verifier) Resolve(ctx context.Context, credential string) (*entity.Identity, error) {
	idToken := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if idToken == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("missing token")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	return &entity.Identity{UserID: token.UID, Provider: constants.AuthProviderFirebase}, nil
}
