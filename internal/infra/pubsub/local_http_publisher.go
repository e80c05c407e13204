package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"huddle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/huddle-notifications"

// PushEnvelope mirrors the body Google Pub/Sub sends to push endpoints
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts push envelopes straight to a worker, standing in for a push subscription
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that POSTs to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.DomainEventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	body, err := newPushEnvelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Domain event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("category", string(event.Category)),
		slog.String("recipient_id", event.RecipientID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

func newPushEnvelope(event *service.DomainEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)

	return body, errors.WithStack(err)
}
