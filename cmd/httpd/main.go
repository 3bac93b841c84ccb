// Command httpd runs the content-qa HTTP service: deterministic policy
// filtering for transcripts and quality assessment for generated
// articles.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonesrussell/content-qa/internal/api"
	"github.com/jonesrussell/content-qa/internal/config"
	"github.com/jonesrussell/content-qa/internal/database"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/processor"
	"github.com/jonesrussell/content-qa/internal/quality"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "content-qa:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting content-qa service",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
	)

	tp := telemetry.NewProvider()

	db, err := database.New(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	history := database.NewHistoryRepository(db)
	log.Info("history store ready", logger.String("driver", cfg.Database.Driver))

	contentFilter := filter.New(log, tp)
	assessor := quality.New(log, tp)
	batchProcessor := processor.NewBatchProcessor(contentFilter, cfg.Service.Concurrency, tp, log)

	handler := api.NewHandler(contentFilter, assessor, batchProcessor, history, tp, log)
	server := api.NewServer(cfg, handler, tp, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Error("server error", logger.Error(err))
			return err
		}
		return nil
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			return err
		}

		log.Info("server stopped gracefully")
		return nil
	}
}
