package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"subscriptionId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"websocket": map[string]any{
			"sendBufferSize": 256,
		},
		"redis": map[string]any{
			"participantTtl": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_SUBSCRIPTIONID", want: "pubsub.subscriptionId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "WEBSOCKET_SENDBUFFERSIZE", want: "websocket.sendBufferSize"},
		{envKey: "REDIS_PARTICIPANTTTL", want: "redis.participantTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultSendBufferSize, cfg.WebSocket.SendBufferSize)
	assert.Equal(t, int64(defaultMaxMessageSize), cfg.WebSocket.MaxMessageSize)
	assert.Equal(t, defaultWriteWait, cfg.WebSocket.WriteWait)
	assert.Equal(t, defaultPongWait, cfg.WebSocket.PongWait)
	assert.Equal(t, defaultPageSize, cfg.Notification.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Notification.MaxPageSize)
	assert.Equal(t, defaultParticipantTTL, cfg.Redis.ParticipantTTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.WebSocket.SendBufferSize = 8
	cfg.WebSocket.PongWait = 5 * time.Second
	cfg.Notification.DefaultPageSize = 150

	applyDefaults(cfg)

	assert.Equal(t, 8, cfg.WebSocket.SendBufferSize)
	assert.Equal(t, 5*time.Second, cfg.WebSocket.PongWait)
	assert.Equal(t, 150, cfg.Notification.DefaultPageSize)
	assert.Equal(t, 150, cfg.Notification.MaxPageSize)
	assert.Nil(t, cfg.Redis)
}
