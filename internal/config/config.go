// Package config loads service configuration from defaults, an optional YAML file
// and AUCTION_ prefixed environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "AUCTION_"
	envConfigPath  = "AUCTION_CONFIG"
	defaultCfgPath = "configs/config.yaml"
)

type Config struct {
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	Redis         RedisConfig         `koanf:"redis"`
	Sweeper       SweeperConfig       `koanf:"sweeper"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Auth          AuthConfig          `koanf:"auth"`
	Bidding       BiddingConfig       `koanf:"bidding"`
}

type ServerConfig struct {
	Port            int             `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration   `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration   `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration   `koanf:"shutdown_timeout" validate:"gt=0"`
	RateLimit       RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig bounds bid placements per bidder. Zero disables the limiter.
type RateLimitConfig struct {
	BidsPerSecond float64 `koanf:"bids_per_second" validate:"gte=0"`
	Burst         int     `koanf:"burst" validate:"gte=0"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"oneof=memory postgres"`
	URL             string        `koanf:"url" validate:"required_if=Driver postgres"`
	MaxConns        int32         `koanf:"max_conns" validate:"gte=1"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SeedDemoData    bool          `koanf:"seed_demo_data"`
}

// RedisConfig is optional; an empty Addr disables distributed sweep locking.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db" validate:"gte=0"`
	LockTTL  time.Duration `koanf:"lock_ttl" validate:"gt=0"`
}

type SweeperConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Spec      string `koanf:"spec" validate:"required_if=Enabled true"`
	BatchSize int    `koanf:"batch_size" validate:"gte=1"`
}

type NotificationsConfig struct {
	WebhookURL string `koanf:"webhook_url" validate:"omitempty,url"`
	QueueSize  int    `koanf:"queue_size" validate:"gte=1"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

type BiddingConfig struct {
	DefaultCurrency string `koanf:"default_currency" validate:"len=3"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				BidsPerSecond: 5,
				Burst:         10,
			},
		},
		Database: DatabaseConfig{
			Driver:          "memory",
			MaxConns:        10,
			ConnMaxLifetime: 30 * time.Minute,
			SeedDemoData:    true,
		},
		Redis: RedisConfig{
			LockTTL: 30 * time.Second,
		},
		Sweeper: SweeperConfig{
			Enabled:   true,
			Spec:      "*/5 * * * * *",
			BatchSize: 100,
		},
		Notifications: NotificationsConfig{
			QueueSize: 1024,
		},
		Bidding: BiddingConfig{
			DefaultCurrency: "USD",
		},
	}
}

// Load builds the configuration. The YAML file is optional unless AUCTION_CONFIG names it explicitly.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path, explicit := os.LookupEnv(envConfigPath)
	if !explicit {
		path = defaultCfgPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps AUCTION_SERVER__READ_TIMEOUT to server.read_timeout
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if key == "config" {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

// Validate checks struct tag constraints
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
