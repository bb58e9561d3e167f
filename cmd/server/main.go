// Command server runs one chip duel match and exposes it over gRPC, a
// websocket presenter feed and console key input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/config"
	"github.com/xtding233/chip-duel/internal/history"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/present"
	"github.com/xtding233/chip-duel/internal/round"
	"github.com/xtding233/chip-duel/internal/transport/console"
	"github.com/xtding233/chip-duel/internal/transport/grpcapi"
	"github.com/xtding233/chip-duel/internal/transport/ws"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := cfg.NewLogger(stderr)
	slog.SetDefault(logger)

	loader := catalog.NewLoader(cfg.CatalogDir)
	provider := catalog.NewFileProvider(loader, cfg.CatalogSet, logger)

	rng := pool.DefaultRNG()
	if cfg.Seed != 0 {
		rng = pool.NewSeededRNG(cfg.Seed)
	}

	var (
		recorder round.Recorder
		buffered *round.BufferedRecorder
		hist     grpcapi.HistoryReader
	)
	if cfg.HistoryPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryPath), 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()
		buffered = round.NewBufferedRecorder(store, round.DefaultRecordQueue, logger)
		recorder, hist = buffered, store
	}

	hub := ws.NewHub(logger, true)
	session, err := round.NewSession(round.Config{
		Provider:  provider,
		Presenter: present.Multi{present.NewLogPresenter(logger), hub},
		RNG:       rng,
		Logger:    logger,
		Recorder:  recorder,
	})
	if err != nil {
		return err
	}
	driver, err := round.NewDriver(round.DriverConfig{Session: session, TickRate: cfg.TickRate, Logger: logger})
	if err != nil {
		return err
	}
	hub.Bind(driver)

	g, ctx := errgroup.WithContext(ctx)
	if err := driver.Start(ctx); err != nil {
		return err
	}
	g.Go(func() error {
		<-driver.Done()
		return nil
	})
	if buffered != nil {
		g.Go(func() error {
			buffered.Run(ctx)
			return nil
		})
	}

	if cfg.WatchInterval > 0 {
		w := catalog.NewFileWatcher(
			func() []string { return loader.WatchedFiles(cfg.CatalogSet) },
			cfg.WatchInterval,
			func(path string) {
				logger.Info("catalog file changed", "path", path)
				loader.Invalidate()
				if _, err := driver.Submit(ctx, round.CatalogChanged{}); err != nil {
					logger.Warn("catalog reload failed", "err", err)
				}
			},
		)
		g.Go(func() error {
			w.Run(ctx)
			return nil
		})
	}

	if cfg.GRPCAddr != "" {
		srv, err := grpcapi.NewServer(cfg.GRPCAddr, grpcapi.NewService(driver, hist, logger), logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return srv.Serve(ctx) })
	}

	if cfg.HTTPAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			logger.Info("websocket server listening", "addr", cfg.HTTPAddr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve http: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	if cfg.Console && stdin != nil {
		// stdin reads block, so this goroutine is not waited on.
		go func() {
			if err := console.Run(ctx, stdin, stdout, driver, logger); err != nil && ctx.Err() == nil {
				logger.Warn("console input stopped", "err", err)
			}
		}()
	}

	logger.Info("match ready", "round", session.RoundID(), "catalog_dir", cfg.CatalogDir, "set", cfg.CatalogSet)
	return g.Wait()
}
