package worker

import (
	"context"
	"log/slog"
	"sync"

	"huddle/config"
	"huddle/internal/delivery"
	"huddle/internal/delivery/worker/handler"
	"huddle/internal/domain/constants"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pullSubscriber struct {
	logger         *slog.Logger
	subscriptionID string
	client         *pubsub.Client
	subscriber     *pubsub.Subscriber
	ingestor       *handler.EventIngestor

	mu     sync.Mutex
	cancel context.CancelFunc
}

// SubscriberParams holds dependencies for the pull subscriber
type SubscriberParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Cfg      *config.Config
	Logger   *slog.Logger
	Ingestor *handler.EventIngestor
}

// NewSubscriber returns a pull subscriber when the google provider is configured, and nil otherwise.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderGoogle {
		return nil, nil
	}
	if cfg.ProjectID == "" || cfg.SubscriptionID == "" {
		return nil, errors.New("project ID and subscription ID are required for google provider")
	}

	client, err := pubsub.NewClient(params.Ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionID)
	if cfg.MaxOutstandingMessages > 0 {
		subscriber.ReceiveSettings.MaxOutstandingMessages = cfg.MaxOutstandingMessages
	}

	s := &pullSubscriber{
		logger:         params.Logger,
		subscriptionID: cfg.SubscriptionID,
		client:         client,
		subscriber:     subscriber,
		ingestor:       params.Ingestor,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve receives until stop cancels the receive context
func (s *pullSubscriber) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Starting Pub/Sub pull subscriber", slog.String("subscription_id", s.subscriptionID))

	err := s.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if s.ingestor.Ingest(ctx, msg.ID, msg.Data, msg.Attributes) {
			msg.Nack()

			return
		}
		msg.Ack()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pullSubscriber) stop(_ context.Context) error {
	s.logger.Info("Stopping Pub/Sub pull subscriber")

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return errors.WithStack(s.client.Close())
}
