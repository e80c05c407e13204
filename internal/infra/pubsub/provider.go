package pubsub

import (
	"context"
	"log/slog"

	"huddle/config"
	"huddle/internal/domain/constants"
	"huddle/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPublisher picks the publisher matching the configured provider.
// The caller owns the result and must Close it.
func NewPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.DomainEventPublisher, error) {
	if cfg == nil {
		return nil, errors.New("pubsub is not configured")
	}

	switch cfg.Provider {
	case constants.PubSubProviderPush, "":
		if cfg.PushEndpoint == "" {
			return nil, errors.New("push endpoint is required for push provider")
		}

		return NewLocalHTTPPublisher(cfg.PushEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
