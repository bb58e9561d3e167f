package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xtding233/chip-duel/internal/config"
)

const testCatalog = `version: "1"
sounds:
  place: sounds/place
characters:
  - name: Rex
    filePath: sprites/rex
    creatureDescription: It roars.
    powerScore: 7
  - name: Mimi
    filePath: sprites/mimi
    creatureDescription: Its fur is soft.
    powerScore: 3
`

func TestRunServesUntilCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "catalog"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog", "default.yaml"), []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{
		CatalogDir:    dir,
		HistoryPath:   filepath.Join(dir, "data", "history.db"),
		TickRate:      60,
		WatchInterval: 50 * time.Millisecond,
		LogLevel:      "info",
		Seed:          1,
		Console:       true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	var out, logs bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, strings.NewReader("1\n"), &out, &logs) }()

	time.Sleep(300 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	if _, err := os.Stat(cfg.HistoryPath); err != nil {
		t.Fatalf("history db not created: %v", err)
	}
	if !strings.Contains(logs.String(), "match ready") {
		t.Fatalf("logs = %s", logs.String())
	}
}

func TestRunFailsWithoutCatalog(t *testing.T) {
	cfg := config.Config{CatalogDir: t.TempDir(), TickRate: 60, LogLevel: "info"}
	var sink bytes.Buffer
	if err := run(context.Background(), cfg, nil, &sink, &sink); err == nil {
		t.Fatal("expected error for missing catalog")
	}
}
