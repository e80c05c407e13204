package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSendBufferSize     = 256
	defaultMaxMessageSize     = 64 * 1024
	defaultWriteWait          = 10 * time.Second
	defaultPongWait           = 60 * time.Second
	defaultPageSize           = 20
	defaultMaxPageSize        = 100
	defaultParticipantTTL     = 5 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Auth selects how handshake and REST credentials are resolved to a user
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis configuration for the room header cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	WebSocket WebSocketConfig `json:"websocket" yaml:"websocket"`

	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for domain event ingestion
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the Pub/Sub push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "jwt" (HS256 access tokens) or "firebase" (Firebase ID tokens)
	Provider string        `json:"provider" yaml:"provider"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the connection used for caching room headers
type RedisConfig struct {
	Addr           string        `json:"addr" yaml:"addr"`
	Password       string        `json:"password" yaml:"password"`
	DB             int           `json:"db" yaml:"db"`
	ParticipantTTL time.Duration `json:"participantTtl" yaml:"participantTtl"`
}

// WebSocketConfig tunes the realtime socket transport
type WebSocketConfig struct {
	ReadBufferSize  int           `json:"readBufferSize" yaml:"readBufferSize"`
	WriteBufferSize int           `json:"writeBufferSize" yaml:"writeBufferSize"`
	SendBufferSize  int           `json:"sendBufferSize" yaml:"sendBufferSize"`
	MaxMessageSize  int64         `json:"maxMessageSize" yaml:"maxMessageSize"`
	WriteWait       time.Duration `json:"writeWait" yaml:"writeWait"`
	PongWait        time.Duration `json:"pongWait" yaml:"pongWait"`
	AllowedOrigins  []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// NotificationConfig bounds notification listing
type NotificationConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// PubSubConfig defines where domain events are consumed from
type PubSubConfig struct {
	// Provider type: "push" for the worker push endpoint or "google" for a pull subscription
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub subscription ID (for google provider)
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// TopicID is where huddlectl publishes events (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// PushEndpoint is the worker URL huddlectl posts push envelopes to (for push provider)
	PushEndpoint string `json:"pushEndpoint" yaml:"pushEndpoint"`

	// MaxOutstandingMessages caps concurrent handler invocations for the pull subscriber
	MaxOutstandingMessages int `json:"maxOutstandingMessages" yaml:"maxOutstandingMessages"`
}

// WorkerConfig defines the push endpoint server
type WorkerConfig struct {
	Port           int  `json:"port" yaml:"port"`
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	ws := &cfg.WebSocket
	if ws.SendBufferSize <= 0 {
		ws.SendBufferSize = defaultSendBufferSize
	}
	if ws.MaxMessageSize <= 0 {
		ws.MaxMessageSize = defaultMaxMessageSize
	}
	if ws.WriteWait <= 0 {
		ws.WriteWait = defaultWriteWait
	}
	if ws.PongWait <= 0 {
		ws.PongWait = defaultPongWait
	}

	if cfg.Notification.DefaultPageSize <= 0 {
		cfg.Notification.DefaultPageSize = defaultPageSize
	}
	if cfg.Notification.MaxPageSize < cfg.Notification.DefaultPageSize {
		cfg.Notification.MaxPageSize = max(defaultMaxPageSize, cfg.Notification.DefaultPageSize)
	}

	if cfg.Redis != nil && cfg.Redis.ParticipantTTL <= 0 {
		cfg.Redis.ParticipantTTL = defaultParticipantTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
