// Package config loads server settings from the environment, an optional
// .env file and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	CatalogDir    string        `env:"CHIPDUEL_CATALOG_DIR"    envDefault:"assets"`
	CatalogSet    string        `env:"CHIPDUEL_CATALOG_SET"`
	GRPCAddr      string        `env:"CHIPDUEL_GRPC_ADDR"      envDefault:"localhost:9090"`
	HTTPAddr      string        `env:"CHIPDUEL_HTTP_ADDR"      envDefault:"localhost:8080"`
	HistoryPath   string        `env:"CHIPDUEL_HISTORY_PATH"   envDefault:"data/history.db"`
	TickRate      int           `env:"CHIPDUEL_TICK_RATE"      envDefault:"60"`
	WatchInterval time.Duration `env:"CHIPDUEL_WATCH_INTERVAL" envDefault:"2s"`
	LogLevel      string        `env:"CHIPDUEL_LOG_LEVEL"      envDefault:"info"`
	Seed          uint64        `env:"CHIPDUEL_SEED"`
	Console       bool          `env:"CHIPDUEL_CONSOLE"        envDefault:"true"`
}

// LoadDotEnv loads path into the environment when it exists. Variables
// already set are left alone.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.CatalogDir, "catalog-dir", cfg.CatalogDir, "directory holding catalog files and assets")
	fs.StringVar(&cfg.CatalogSet, "catalog-set", cfg.CatalogSet, "catalog variant merged over the default")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC listen address (empty disables)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "websocket listen address (empty disables)")
	fs.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "sqlite file for round history (empty disables)")
	fs.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "animation ticks per second")
	fs.DurationVar(&cfg.WatchInterval, "watch-interval", cfg.WatchInterval, "catalog poll interval (0 disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for a reproducible draw order (0 uses crypto randomness)")
	fs.BoolVar(&cfg.Console, "console", cfg.Console, "read key input from stdin")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values flags and env cannot constrain on their own.
func (c Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.CatalogDir) == "" {
		errs = append(errs, "catalog dir is required")
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		errs = append(errs, fmt.Sprintf("tick rate %d out of range (1..1000)", c.TickRate))
	}
	if c.WatchInterval < 0 {
		errs = append(errs, "watch interval must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return errors.New("invalid config: " + strings.Join(errs, "; "))
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// NewLogger returns a text logger at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
