package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the service, read from environment
// variables.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Catalog snapshot. Empty means the built-in demo catalog.
	CatalogPath string `env:"CATALOG_PATH"`

	// Suggestions
	TrendingTerms   []string `env:"TRENDING_TERMS" envSeparator:"," envDefault:"iPhone,MacBook,headphones,gaming laptop,smart TV"`
	HistoryCapacity int      `env:"HISTORY_CAPACITY" envDefault:"10"`

	// Trending endpoint product sample. The seed is explicit so the
	// sample is reproducible in tests and across restarts.
	TrendingSampleSize int   `env:"TRENDING_SAMPLE_SIZE" envDefault:"6"`
	TrendingSampleSeed int64 `env:"TRENDING_SAMPLE_SEED" envDefault:"1"`

	// Redis-backed trending terms. Empty address keeps the static list.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka catalog event feed. No brokers means no consumers.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	// Per-IP rate limiting on the public API.
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("invalid history capacity: %d", c.HistoryCapacity)
	}
	if c.TrendingSampleSize < 1 {
		return fmt.Errorf("invalid trending sample size: %d", c.TrendingSampleSize)
	}
	if c.RateLimitRPS < 1 || c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid rate limit: rps=%d burst=%d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}
