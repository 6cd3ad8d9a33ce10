package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wishlist/internal/amqp"
	"wishlist/internal/config"
	apphttp "wishlist/internal/http"
	applog "wishlist/internal/log"
	"wishlist/internal/reconcile"
	"wishlist/internal/scrape"
	"wishlist/internal/storage"
	"wishlist/internal/store"
	"wishlist/internal/store/local"
	"wishlist/internal/store/memory"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var (
		catalog  store.CatalogStore
		statuses store.StatusStore
		cleanup  func()
	)

	switch cfg.DataBackend {
	case config.BackendSQLite:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		if err := repo.SeedIfEmpty(context.Background(), store.SeedCatalog()); err != nil {
			logger.Error("Failed to seed catalog", "error", err)
			os.Exit(1)
		}
		catalog, statuses = repo, repo
		cleanup = func() { _ = repo.Close() }
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)

	case config.BackendFile:
		// Catalog stays in memory; statuses persist to the versioned file.
		fileStore, err := local.Open(cfg.LocalStateDir)
		if err != nil {
			logger.Error("Failed to open local state store", "error", err, "dir", cfg.LocalStateDir)
			os.Exit(1)
		}
		catalog = memory.NewSeeded()
		statuses = fileStore
		logger.Info("Initialized file backend", "dir", cfg.LocalStateDir)

	default:
		mem := memory.NewSeeded()
		catalog, statuses = mem, mem
		logger.Info("Initialized memory backend")
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Optional status-event publishing for the export worker.
	var sink reconcile.EventSink
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		sink = amqpClient
		logger.Info("Status event publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	rec := reconcile.New(statuses, sink, logger)
	if err := rec.InitFromRemote(context.Background()); err != nil {
		// Not fatal: the server starts with an empty status cache and the
		// store is retried on the next write.
		logger.Error("Failed to load statuses from store", "error", err)
	}
	defer rec.Close()

	scraper := scrape.New(nil, cfg.ScrapeTimeout)

	srv := apphttp.NewServer(":"+cfg.Port, catalog, rec, scraper, cfg.DefaultBudget)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting wishlist server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
