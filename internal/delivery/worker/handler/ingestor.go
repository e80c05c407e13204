package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/service"
	"huddle/internal/usecase"

	"github.com/google/uuid"
)

// EventIngestor decodes a delivered Pub/Sub payload and hands it to the domain event usecase.
// Push and pull deliveries share it so both classify failures the same way.
type EventIngestor struct {
	logger *slog.Logger
	events usecase.DomainEventUsecase
}

func NewEventIngestor(logger *slog.Logger, events usecase.DomainEventUsecase) *EventIngestor {
	return &EventIngestor{
		logger: logger,
		events: events,
	}
}

// Ingest reports whether the message should be redelivered.
// Undecodable payloads are dropped since a retry cannot fix them.
func (i *EventIngestor) Ingest(ctx context.Context, messageID string, data []byte, attributes map[string]string) (retry bool) {
	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		i.logger.Error("[Worker] Failed to parse domain event",
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)

		return false
	}

	requestID := extractRequestID(ctx, attributes, &event)
	reqLogger := i.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("message_id", messageID),
		slog.String("category", string(event.Category)),
		slog.String("recipient_id", event.RecipientID),
	)

	if err := i.events.Ingest(ctx, &event); err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("message_id", messageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)

		return retryable
	}

	return false
}

// extractRequestID prefers message attributes, then the payload, then the inbound request
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.DomainEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
