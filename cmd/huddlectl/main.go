// Command huddlectl issues development tokens and publishes domain events
// onto the notification topic.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/service"
	"huddle/internal/infra/auth"
	logs "huddle/internal/infra/log"
	"huddle/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const usage = `usage:
  huddlectl token <userID>
  huddlectl notify -recipient <userID> -category <CATEGORY> [-type TYPE] [-sender ID] [-title T] [-message M] [-ref ID -ref-kind KIND]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "huddlectl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	switch command {
	case "token":
		return issueToken(cfg, args)
	case "notify":
		logger, err := logs.New(logs.Params{Config: cfg})
		if err != nil {
			return errors.Wrap(err, "failed to create logger")
		}

		return notify(ctx, cfg, logger, args)
	default:
		return errors.Errorf("unknown command %q\n%s", command, usage)
	}
}

func issueToken(cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("token requires exactly one user id")
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := jwtService.IssueToken(args[0])
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}

func notify(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string) error {
	event, err := parseEvent(args)
	if err != nil {
		return err
	}

	publisher, err := pubsub.NewPublisher(ctx, cfg.PubSub, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Warn("Failed to close publisher", slog.Any("error", closeErr))
		}
	}()

	if err := publisher.Publish(ctx, event); err != nil {
		return err
	}

	fmt.Println(event.RequestID)

	return nil
}

func parseEvent(args []string) (*service.DomainEvent, error) {
	fs := flag.NewFlagSet("notify", flag.ContinueOnError)

	var (
		recipient = fs.String("recipient", "", "recipient user id")
		category  = fs.String("category", string(entity.CategorySystem), "notification category")
		kind      = fs.String("type", "", "notification type, defaults to the category's generic type")
		sender    = fs.String("sender", "", "sender user id")
		title     = fs.String("title", "", "title")
		message   = fs.String("message", "", "message body")
		refID     = fs.String("ref", "", "referenced entity id")
		refKind   = fs.String("ref-kind", "", "referenced entity kind")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	event := &service.DomainEvent{
		RequestID:     uuid.NewString(),
		Category:      entity.NotificationCategory(*category),
		Type:          entity.NotificationType(*kind),
		RecipientID:   *recipient,
		SenderID:      *sender,
		Title:         *title,
		Message:       *message,
		ReferenceID:   *refID,
		ReferenceKind: entity.ReferenceKind(*refKind),
	}

	if event.RecipientID == "" {
		return nil, errors.New("notify requires -recipient")
	}

	if _, ok := event.Draft(); !ok {
		return nil, errors.Errorf("unknown category %q", *category)
	}

	return event, nil
}
