package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"huddle/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher publishes domain events to a Google Cloud Pub/Sub topic
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher verifies the topic exists before returning a publisher for it
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.DomainEventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Publish blocks until the server acknowledges the message
func (p *googlePublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish domain event")
	}

	p.logger.Info("[GooglePubSub] Domain event published",
		slog.String("category", string(event.Category)),
		slog.String("recipient_id", event.RecipientID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// eventAttributes lets subscriptions filter by category and carries the trace ID
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"category":     string(event.Category),
		"recipient_id": event.RecipientID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
