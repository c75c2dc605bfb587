package config

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/cache"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	NoCache     = "none"
	MemoryCache = "memory"
	RedisCache  = "redis"
)

// Config holds the fnapi settings loaded from the environment.
type Config struct {
	Api   ApiConfig
	Cache CacheConfig
	CLI   CLIConfig
}

// ApiConfig holds transport settings for fortnite-api.com.
type ApiConfig struct {
	Key       string        `envconfig:"FORTNITE_API_KEY" default:""`
	BaseURL   string        `envconfig:"FORTNITE_API_BASE_URL" default:"https://fortnite-api.com"`
	Language  api.Language  `envconfig:"FORTNITE_API_LANGUAGE" default:"en"`
	Timeout   time.Duration `envconfig:"FORTNITE_API_TIMEOUT" default:"30s"`
	RetryMax  int           `envconfig:"FORTNITE_API_RETRY_MAX" default:"3"`
	RateLimit float64       `envconfig:"FORTNITE_API_RATE_LIMIT" default:"0"`
	RateBurst int           `envconfig:"FORTNITE_API_RATE_BURST" default:"1"`
}

// CacheConfig selects the response cache.
type CacheConfig struct {
	Type string        `envconfig:"FORTNITE_API_CACHE" default:"none"`
	TTL  time.Duration `envconfig:"FORTNITE_API_CACHE_TTL" default:"5m"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CLIConfig struct {
	LogLevel      string `envconfig:"FNAPI_LOG_LEVEL" default:"info"`
	WatchSchedule string `envconfig:"FNAPI_WATCH_SCHEDULE" default:"*/15 * * * *"`
}

// RedisAddress returns the Redis address in host:port format.
func (c *CacheConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Open builds the configured cache adaptor. The closer is nil when no cache
// is configured.
func (c *CacheConfig) Open(ctx context.Context) (api.CacheAdaptor, io.Closer, error) {
	switch strings.ToLower(c.Type) {
	case "", NoCache:
		return nil, nil, nil
	case MemoryCache:
		memory := cache.NewMemory()
		return memory, memory, nil
	case RedisCache:
		redis, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     c.RedisAddress(),
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redis, redis, nil
	default:
		return nil, nil, eris.Errorf("unknown cache type %q", c.Type)
	}
}

// TransportOptions returns the transport settings with responseCache plugged in.
func (c *Config) TransportOptions(responseCache api.CacheAdaptor) api.HttpTransportOptions {
	options := api.HttpTransportOptions{
		BaseURL:   c.Api.BaseURL,
		ApiKey:    c.Api.Key,
		Timeout:   c.Api.Timeout,
		RetryMax:  c.Api.RetryMax,
		RateLimit: c.Api.RateLimit,
		RateBurst: c.Api.RateBurst,
	}
	if responseCache != nil {
		options.ResponseCache = responseCache
		options.CacheTTL = c.Cache.TTL
	}
	return options
}

func (c *CLIConfig) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "invalid FNAPI_LOG_LEVEL %q", c.LogLevel)
	}
	return level, nil
}

// Load reads configuration from the environment after loading .env, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}
	if cfg.Api.Language == "" {
		cfg.Api.Language = api.EnglishLanguage
	}
	return &cfg, nil
}
