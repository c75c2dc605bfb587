package config

import (
	"context"
	"testing"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/cache"
	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Api.BaseURL != api.BaseURL {
		t.Errorf("BaseURL=%q", cfg.Api.BaseURL)
	}
	if cfg.Api.Language != api.EnglishLanguage || cfg.Api.Timeout != 30*time.Second || cfg.Api.RetryMax != 3 {
		t.Errorf("Api=%+v", cfg.Api)
	}
	if cfg.Cache.Type != NoCache || cfg.Cache.TTL != 5*time.Minute || cfg.Cache.RedisAddress() != "localhost:6379" {
		t.Errorf("Cache=%+v", cfg.Cache)
	}
	if cfg.CLI.WatchSchedule != "*/15 * * * *" {
		t.Errorf("WatchSchedule=%q", cfg.CLI.WatchSchedule)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FORTNITE_API_KEY", "secret")
	t.Setenv("FORTNITE_API_LANGUAGE", "de")
	t.Setenv("FORTNITE_API_RATE_LIMIT", "2.5")
	t.Setenv("FORTNITE_API_CACHE", "memory")
	t.Setenv("FORTNITE_API_CACHE_TTL", "90s")
	t.Setenv("FNAPI_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	options := cfg.TransportOptions(nil)
	if options.ApiKey != "secret" || options.RateLimit != 2.5 || options.ResponseCache != nil || options.CacheTTL != 0 {
		t.Errorf("TransportOptions(nil)=%+v", options)
	}
	if cfg.Api.Language != api.GermanLanguage {
		t.Errorf("Language=%q", cfg.Api.Language)
	}

	responseCache, closer, err := cfg.Cache.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if _, ok := responseCache.(*cache.Memory); !ok {
		t.Errorf("Open()=%T, expected *cache.Memory", responseCache)
	}
	if options := cfg.TransportOptions(responseCache); options.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL=%v", options.CacheTTL)
	}

	level, err := cfg.CLI.Level()
	if err != nil || level != zerolog.DebugLevel {
		t.Errorf("Level()=%v,%v", level, err)
	}
}

func TestInvalidSettings(t *testing.T) {
	t.Setenv("FORTNITE_API_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for an unparsable duration")
	}

	c := CacheConfig{Type: "memcached"}
	if _, _, err := c.Open(context.Background()); err == nil {
		t.Error("expected error for an unknown cache type")
	}

	cli := CLIConfig{LogLevel: "loud"}
	if _, err := cli.Level(); err == nil {
		t.Error("expected error for an unknown log level")
	}

	none := CacheConfig{Type: NoCache}
	responseCache, closer, err := none.Open(context.Background())
	if responseCache != nil || closer != nil || err != nil {
		t.Errorf("Open(none)=%v,%v,%v", responseCache, closer, err)
	}
}
