package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/errors"
	"huddle/internal/realtime"
	"huddle/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	newMessageTitle   = "New message"
	newMessagePattern = "New message in %s"
)

var validate = validator.New()

// EventRouterParams holds dependencies for the event router, injected by Fx.
type EventRouterParams struct {
	fx.In

	Logger        *slog.Logger
	Registry      *realtime.Registry
	Membership    usecase.MembershipUsecase
	RoomRepo      repository.RoomRepository
	TxManager     repository.TransactionManager
	Notifications usecase.NotificationUsecase
}

type eventRouter struct {
	logger        *slog.Logger
	registry      *realtime.Registry
	membership    usecase.MembershipUsecase
	roomRepo      repository.RoomRepository
	txManager     repository.TransactionManager
	notifications usecase.NotificationUsecase
	now           func() time.Time
}

// NewEventRouter creates the router for inbound realtime events.
func NewEventRouter(params EventRouterParams) usecase.EventRouter {
	return &eventRouter{
		logger:        params.Logger,
		registry:      params.Registry,
		membership:    params.Membership,
		roomRepo:      params.RoomRepo,
		txManager:     params.TxManager,
		notifications: params.Notifications,
		now:           time.Now,
	}
}

func (r *eventRouter) Connect(session realtime.Session) {
	r.registry.Register(session)
	r.logger.Info("Session connected",
		slog.String("session_id", session.ID()),
		slog.String("user_id", session.UserID()),
		slog.Int("sessions", r.registry.Count()),
	)
}

func (r *eventRouter) Disconnect(session realtime.Session) {
	r.registry.Unregister(session)
	r.logger.Info("Session disconnected",
		slog.String("session_id", session.ID()),
		slog.String("user_id", session.UserID()),
		slog.Duration("connected_for", r.now().Sub(session.ConnectedAt())),
		slog.Int("sessions", r.registry.Count()),
	)
}

// Handle never returns a transport error; every failure becomes an error ack.
func (r *eventRouter) Handle(ctx context.Context, session realtime.Session, event realtime.InboundEvent) realtime.Ack {
	var (
		ack realtime.Ack
		err error
	)

	switch e := event.(type) {
	case realtime.JoinChat:
		ack, err = r.joinChat(ctx, session, e)
	case realtime.LeaveChat:
		ack = r.leaveChat(session, e)
	case realtime.SendMessage:
		ack, err = r.sendMessage(ctx, session, e)
	case realtime.MarkAsRead:
		ack, err = r.markAsRead(ctx, session, e)
	case realtime.Typing:
		ack, err = r.typing(ctx, session, e)
	default:
		err = domainerrors.ErrInvalidOperation.WithDetails(fmt.Sprintf("unsupported event %q", event.Name()))
	}

	if err != nil {
		return r.reject(ctx, session, event, err)
	}

	return ack
}

func (r *eventRouter) joinChat(ctx context.Context, session realtime.Session, e realtime.JoinChat) (realtime.Ack, error) {
	roomID, err := parseRoomID(e.ChatID)
	if err != nil {
		return realtime.Ack{}, err
	}

	if _, err := r.membership.AssertMember(ctx, roomID, session.UserID()); err != nil {
		return realtime.Ack{}, err
	}

	r.registry.Join(session, roomID)

	return realtime.Succeeded("joined chat room"), nil
}

// leaveChat is unconditional; unknown or malformed room IDs are ignored.
func (r *eventRouter) leaveChat(session realtime.Session, e realtime.LeaveChat) realtime.Ack {
	if roomID, err := uuid.Parse(e.ChatID); err == nil {
		r.registry.Leave(session, roomID)
	}

	return realtime.Succeeded("left chat room")
}

func (r *eventRouter) sendMessage(ctx context.Context, session realtime.Session, e realtime.SendMessage) (realtime.Ack, error) {
	if err := validate.Struct(e); err != nil {
		return realtime.Ack{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	roomID, err := parseRoomID(e.ChatID)
	if err != nil {
		return realtime.Ack{}, err
	}

	room, err := r.membership.AssertMember(ctx, roomID, session.UserID())
	if err != nil {
		return realtime.Ack{}, err
	}

	kind := e.Type
	if kind == "" {
		kind = entity.MessageKindText
	}

	id, err := uuid.NewV7()
	if err != nil {
		return realtime.Ack{}, errors.WithStack(err)
	}

	message := entity.Message{
		ID:        id,
		RoomID:    roomID,
		AuthorID:  session.UserID(),
		Content:   e.Content,
		Kind:      kind,
		FileURL:   e.FileURL,
		CreatedAt: r.now(),
	}

	// Fan-out only starts once the message is durable.
	err = r.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		roomRepo := factory.NewRoomRepository()
		if err := roomRepo.InsertMessage(ctx, &message); err != nil {
			return errors.Wrap(err, "failed to insert message")
		}

		return errors.Wrap(roomRepo.TouchRoom(ctx, roomID, message.CreatedAt), "failed to touch room")
	})
	if err != nil {
		return realtime.Ack{}, err
	}

	r.fanOutMessage(ctx, room, message)

	return realtime.Succeeded(message), nil
}

// fanOutMessage pushes to online participants and records a notification for each offline one.
func (r *eventRouter) fanOutMessage(ctx context.Context, room *entity.Room, message entity.Message) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	event := realtime.NewMessage{ChatID: room.ID, Message: message}

	for _, participantID := range room.OtherParticipants(message.AuthorID) {
		delivered, err := r.registry.PushToUser(participantID, event)
		if err != nil {
			logger.Warn("Message push failed",
				slog.String("room_id", room.ID.String()),
				slog.String("recipient_id", participantID),
				slog.Int("delivered", delivered),
				slog.Any("error", err),
			)
		}
		if delivered > 0 || err != nil {
			continue
		}

		_, err = r.notifications.CreateSocial(ctx,
			participantID,
			message.AuthorID,
			entity.TypeNewMessage,
			newMessageTitle,
			fmt.Sprintf(newMessagePattern, room.Name),
			&entity.Reference{ID: room.ID.String(), Kind: entity.ReferenceChat},
		)
		if err != nil {
			logger.Error("Failed to record offline message notification",
				slog.String("room_id", room.ID.String()),
				slog.String("recipient_id", participantID),
				slog.Any("error", err),
			)
		}
	}
}

func (r *eventRouter) markAsRead(ctx context.Context, session realtime.Session, e realtime.MarkAsRead) (realtime.Ack, error) {
	roomID, err := parseRoomID(e.ChatID)
	if err != nil {
		return realtime.Ack{}, err
	}

	if _, err := r.membership.AssertMember(ctx, roomID, session.UserID()); err != nil {
		return realtime.Ack{}, err
	}

	if err := r.roomRepo.UpsertReadMarker(ctx, roomID, session.UserID(), r.now()); err != nil {
		return realtime.Ack{}, errors.Wrap(err, "failed to update read marker")
	}

	return realtime.Succeeded("marked as read"), nil
}

// typing is at-most-once: nothing is stored and offline participants get nothing.
func (r *eventRouter) typing(ctx context.Context, session realtime.Session, e realtime.Typing) (realtime.Ack, error) {
	roomID, err := parseRoomID(e.ChatID)
	if err != nil {
		return realtime.Ack{}, err
	}

	room, err := r.membership.AssertMember(ctx, roomID, session.UserID())
	if err != nil {
		return realtime.Ack{}, err
	}

	event := realtime.UserTyping{ChatID: roomID, UserID: session.UserID(), IsTyping: e.IsTyping}
	for _, participantID := range room.OtherParticipants(session.UserID()) {
		if _, err := r.registry.PushToUser(participantID, event); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Typing push dropped",
				slog.String("recipient_id", participantID),
				slog.Any("error", err),
			)
		}
	}

	return realtime.Succeeded(nil), nil
}

func (r *eventRouter) reject(ctx context.Context, session realtime.Session, event realtime.InboundEvent, err error) realtime.Ack {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return realtime.Rejected(appErr.ErrorCode(), appErr.Message())
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Error("Failed to handle realtime event",
		slog.String("event", event.Name()),
		slog.String("session_id", session.ID()),
		slog.String("user_id", session.UserID()),
		slog.Any("error", err),
	)

	return realtime.Rejected(domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// parseRoomID treats a malformed ID the same as an unknown room
func parseRoomID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrRoomNotFound
	}

	return id, nil
}
