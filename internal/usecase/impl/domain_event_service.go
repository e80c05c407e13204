package impl

import (
	"context"
	"log/slog"

	deliverycontext "huddle/internal/delivery/context"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/usecase"
)

type domainEventService struct {
	logger        *slog.Logger
	notifications usecase.NotificationUsecase
}

// NewDomainEventService creates the ingestor for notification requests published by other services
func NewDomainEventService(logger *slog.Logger, notifications usecase.NotificationUsecase) usecase.DomainEventUsecase {
	return &domainEventService{
		logger:        logger,
		notifications: notifications,
	}
}

// Ingest rejects malformed events for good and asks for redelivery when storage fails.
func (s *domainEventService) Ingest(ctx context.Context, event *service.DomainEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event == nil {
		return domainerrors.ErrValidationFailed.WithDetails("empty domain event")
	}

	draft, ok := event.Draft()
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown notification category " + string(event.Category))
	}

	notification, err := s.notifications.Dispatch(ctx, draft)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return err
		}

		return usecase.NewRetryableError(err)
	}

	logger.Info("Domain event dispatched",
		slog.String("notification_id", notification.ID.String()),
		slog.String("category", string(notification.Category)),
		slog.String("recipient_id", notification.RecipientID),
	)

	return nil
}
