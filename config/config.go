package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Empty selects the in-memory rate store.
	RedisAddr string `env:"REDIS_ADDR"`
	// Empty serves the demo pipeline.
	DatabaseURL string `env:"DATABASE_URL"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	RateLimitCapacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"30"`
	RateLimitRefill   time.Duration `env:"RATE_LIMIT_REFILL" envDefault:"1m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimitCapacity <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", cfg.RateLimitCapacity)
	}
	return cfg, nil
}

// NewLogger builds the root logger: human-readable console output by
// default, JSON when LOG_FORMAT=json.
func (c Config) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
