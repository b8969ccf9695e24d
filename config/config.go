package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"snake-matrix/storage"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvTickMs      = "SNAKE_TICK_MS"
	EnvIdleMs      = "SNAKE_IDLE_MS"
	EnvStore       = "SNAKE_STORE"
	EnvStorePath   = "SNAKE_STORE_PATH"
	EnvDatabaseURL = "SNAKE_DATABASE_URL"
	EnvScale       = "SNAKE_SCALE"
)

type Config struct {
	TickDelay   time.Duration
	IdleDelay   time.Duration
	Store       string // memory, file or postgres
	StorePath   string
	DatabaseURL string
	Scale       int // window pixels per LED
}

// Default is the device timing with a file store under data/.
func Default() *Config {
	return &Config{
		TickDelay: 900 * time.Millisecond,
		IdleDelay: 20 * time.Millisecond,
		Store:     storage.KindFile,
		StorePath: "data/store.json",
		Scale:     96,
	}
}

// Load reads envFile into the environment, if it exists, and builds a
// Config from the defaults overridden by the environment. Variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := durationFromEnv(EnvTickMs, &cfg.TickDelay); err != nil {
		return nil, err
	}
	if err := durationFromEnv(EnvIdleMs, &cfg.IdleDelay); err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv(EnvStore); ok {
		cfg.Store = v
	}
	if v, ok := os.LookupEnv(EnvStorePath); ok {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseURL); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := os.LookupEnv(EnvScale); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvScale, err)
		}
		cfg.Scale = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TickDelay <= 0 {
		return fmt.Errorf("tick delay must be positive, got %s", c.TickDelay)
	}
	if c.IdleDelay <= 0 {
		return fmt.Errorf("idle delay must be positive, got %s", c.IdleDelay)
	}
	if c.Scale < 8 || c.Scale > 512 {
		return fmt.Errorf("scale must be between 8 and 512, got %d", c.Scale)
	}
	switch c.Store {
	case storage.KindMemory:
	case storage.KindFile:
		if c.StorePath == "" {
			return errors.New("file store needs a path")
		}
	case storage.KindPostgres:
		if c.DatabaseURL == "" {
			return errors.New("postgres store needs a database url")
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// Target is what the selected store is opened with.
func (c *Config) Target() string {
	if c.Store == storage.KindPostgres {
		return c.DatabaseURL
	}
	return c.StorePath
}

func durationFromEnv(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = time.Duration(ms) * time.Millisecond
	return nil
}
