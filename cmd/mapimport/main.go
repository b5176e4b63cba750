package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/battlemap/internal/catalog"
	"github.com/udisondev/battlemap/internal/config"
	"github.com/udisondev/battlemap/internal/db"
)

const ConfigPath = "config/mapimport.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BATTLEMAP_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadImporter(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("map importer starting",
		"log_level", cfg.LogLevel,
		"template_dir", cfg.TemplateDir,
		"workers", cfg.LoadWorkers)

	// Parse everything before touching the database so a bad template
	// leaves the stored maps untouched.
	cat, err := catalog.Load(ctx, cfg.TemplateDir, cfg.TemplateExt, cfg.LoadWorkers)
	if err != nil {
		return fmt.Errorf("loading map templates: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.Migrate(ctx, database.Pool()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	res, err := cat.Sync(ctx, database.Maps())
	if err != nil {
		return fmt.Errorf("storing map templates: %w", err)
	}

	slog.Info("map import finished", "templates", cat.Len(), "stored", res.Stored, "unchanged", res.Unchanged)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
