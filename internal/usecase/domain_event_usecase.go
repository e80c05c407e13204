package usecase

import (
	"context"

	"huddle/internal/domain/service"
)

// DomainEventUsecase turns domain events from other services into notifications.
type DomainEventUsecase interface {
	// Ingest dispatches the event. Errors for which IsRetryable holds should be redelivered.
	Ingest(ctx context.Context, event *service.DomainEvent) error
}
