package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/unkn0wn-root/sharedstore/codec"
)

var ErrInvalidValue = errors.New("invalid value")

var (
	loggers   = []string{"zap", "logrus", "slog"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config drives cmd/storebench. Every field is read from a STOREBENCH_*
// environment variable.
type Config struct {
	Codec    string `env:"STOREBENCH_CODEC" envDefault:"json"`
	Logger   string `env:"STOREBENCH_LOGGER" envDefault:"zap"`
	LogLevel string `env:"STOREBENCH_LOG_LEVEL" envDefault:"info"`

	Workers    int     `env:"STOREBENCH_WORKERS" envDefault:"8"`
	Keys       int     `env:"STOREBENCH_KEYS" envDefault:"256"`
	Ops        int     `env:"STOREBENCH_OPS" envDefault:"100000"`
	WriteRatio float64 `env:"STOREBENCH_WRITE_RATIO" envDefault:"0.1"`
	ClearEvery int     `env:"STOREBENCH_CLEAR_EVERY" envDefault:"0"`
	Seed       int64   `env:"STOREBENCH_SEED" envDefault:"1"`

	ExactlyOnce bool `env:"STOREBENCH_EXACTLY_ONCE" envDefault:"false"`
	MaxBytes    int  `env:"STOREBENCH_MAX_BYTES" envDefault:"0"` // 0 disables the size limit

	HookSample uint64 `env:"STOREBENCH_HOOK_SAMPLE" envDefault:"100"`
	HookQueue  int    `env:"STOREBENCH_HOOK_QUEUE" envDefault:"1024"`
}

// FromEnv loads and validates the configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromMap is FromEnv over an explicit variable set.
func FromMap(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	invalid := func(key string, v any) error {
		return fmt.Errorf("%w: %s (%v)", ErrInvalidValue, key, v)
	}

	if !slices.Contains(codec.Names, c.Codec) {
		return invalid("STOREBENCH_CODEC", c.Codec)
	}
	if !slices.Contains(loggers, c.Logger) {
		return invalid("STOREBENCH_LOGGER", c.Logger)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return invalid("STOREBENCH_LOG_LEVEL", c.LogLevel)
	}
	if c.Workers <= 0 {
		return invalid("STOREBENCH_WORKERS", c.Workers)
	}
	if c.Keys <= 0 {
		return invalid("STOREBENCH_KEYS", c.Keys)
	}
	if c.Ops < 0 {
		return invalid("STOREBENCH_OPS", c.Ops)
	}
	if c.WriteRatio < 0 || c.WriteRatio > 1 {
		return invalid("STOREBENCH_WRITE_RATIO", c.WriteRatio)
	}
	if c.ClearEvery < 0 {
		return invalid("STOREBENCH_CLEAR_EVERY", c.ClearEvery)
	}
	if c.MaxBytes < 0 {
		return invalid("STOREBENCH_MAX_BYTES", c.MaxBytes)
	}
	return nil
}

// NonSensitiveString is suitable for logging.
func (c Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{codec: %s, logger: %s, workers: %d, keys: %d, ops: %d, exactlyOnce: %t}",
		c.Codec, c.Logger, c.Workers, c.Keys, c.Ops, c.ExactlyOnce)
}
