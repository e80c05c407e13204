// Package cache provides the room header cache used by membership checks.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/lifecycle"
	"huddle/internal/domain/service"
	"huddle/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "huddle:room:"

// Params defines the dependencies of the room cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache when Redis is configured, and a pass-through cache otherwise.
func New(params Params) service.RoomCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, room cache disabled")

		return noopRoomCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Room cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisRoomCache(client, cfg.ParticipantTTL)
}

// cachedRoom is the header subset of a room kept in Redis.
type cachedRoom struct {
	ID           uuid.UUID       `json:"id"`
	Kind         entity.RoomKind `json:"kind"`
	Name         string          `json:"name"`
	Participants []string        `json:"participants"`
	ChallengeID  *uuid.UUID      `json:"challenge_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type redisRoomCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRoomCache stores room headers under huddle:room:<id> with the given TTL.
func NewRedisRoomCache(client redis.UniversalClient, ttl time.Duration) service.RoomCache {
	return &redisRoomCache{client: client, ttl: ttl}
}

func (c *redisRoomCache) Get(ctx context.Context, roomID uuid.UUID) (*entity.Room, bool, error) {
	raw, err := c.client.Get(ctx, roomKey(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached room")
	}

	room, err := decodeRoom(raw)
	if err != nil {
		return nil, false, err
	}

	return room, true, nil
}

func (c *redisRoomCache) Set(ctx context.Context, room *entity.Room) error {
	raw, err := encodeRoom(room)
	if err != nil {
		return err
	}

	return errors.Wrap(c.client.Set(ctx, roomKey(room.ID), raw, c.ttl).Err(), "failed to cache room")
}

func (c *redisRoomCache) Invalidate(ctx context.Context, roomID uuid.UUID) error {
	return errors.Wrap(c.client.Del(ctx, roomKey(roomID)).Err(), "failed to invalidate cached room")
}

func roomKey(roomID uuid.UUID) string {
	return keyPrefix + roomID.String()
}

func encodeRoom(room *entity.Room) ([]byte, error) {
	raw, err := json.Marshal(cachedRoom{
		ID:           room.ID,
		Kind:         room.Kind,
		Name:         room.Name,
		Participants: room.ParticipantIDs,
		ChallengeID:  room.ChallengeID,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	})

	return raw, errors.Wrap(err, "failed to encode room")
}

func decodeRoom(raw []byte) (*entity.Room, error) {
	var cached cachedRoom
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached room")
	}

	return &entity.Room{
		ID:             cached.ID,
		Kind:           cached.Kind,
		Name:           cached.Name,
		ParticipantIDs: cached.Participants,
		ChallengeID:    cached.ChallengeID,
		CreatedAt:      cached.CreatedAt,
		UpdatedAt:      cached.UpdatedAt,
	}, nil
}

// noopRoomCache always misses, so every check reads the repository.
type noopRoomCache struct{}

func (noopRoomCache) Get(context.Context, uuid.UUID) (*entity.Room, bool, error) {
	return nil, false, nil
}
func (noopRoomCache) Set(context.Context, *entity.Room) error     { return nil }
func (noopRoomCache) Invalidate(context.Context, uuid.UUID) error { return nil }
