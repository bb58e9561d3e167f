package config

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.CatalogDir != "assets" {
		t.Fatalf("catalog dir = %q", cfg.CatalogDir)
	}
	if cfg.TickRate != 60 || cfg.WatchInterval != 2*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.Console {
		t.Fatal("expected console input to default to true")
	}
	if cfg.Seed != 0 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CHIPDUEL_CATALOG_SET", "halloween")
	t.Setenv("CHIPDUEL_TICK_RATE", "30")
	t.Setenv("CHIPDUEL_SEED", "42")
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-tick-rate", "120", "-grpc-addr", ""})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.CatalogSet != "halloween" || cfg.Seed != 42 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.TickRate != 120 {
		t.Fatalf("flag did not override env: %d", cfg.TickRate)
	}
	if cfg.GRPCAddr != "" {
		t.Fatalf("grpc addr = %q", cfg.GRPCAddr)
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Setenv("CHIPDUEL_TICK_RATE", "fast")
	if _, err := ParseConfig(flag.NewFlagSet("server", flag.ContinueOnError), nil); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("CHIPDUEL_TICK_RATE", "60")
	_, err := ParseConfig(flag.NewFlagSet("server", flag.ContinueOnError), []string{"-log-level", "loud", "-tick-rate", "0"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"tick rate", "log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q misses %q", err, want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CHIPDUEL_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHIPDUEL_TEST_DOTENV", "")
	os.Unsetenv("CHIPDUEL_TEST_DOTENV")
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("CHIPDUEL_TEST_DOTENV"); got != "loaded" {
		t.Fatalf("dotenv value = %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log output = %q", buf.String())
	}
}
