package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"smartspend/internal/accounts"
	appamqp "smartspend/internal/amqp"
	"smartspend/internal/config"
	apphttp "smartspend/internal/http"
	"smartspend/internal/kv"
	"smartspend/internal/ledger"
	applog "smartspend/internal/log"
	"smartspend/internal/prefs"
	"smartspend/internal/services"
)

func main() {
	// Load .env for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var store kv.Store
	switch cfg.DataBackend {
	case "sqlite":
		sqliteStore, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open sqlite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		store = sqliteStore
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		store = kv.NewMemory()
		logger.Info("Initialized memory backend")
	}
	defer store.Close()

	// AMQP is optional: without it, saves skip the export publish.
	var amqpClient *appamqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = appamqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		logger.Info("AMQP export pipeline enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP export pipeline disabled - no AMQP_URL provided")
	}

	accountStore := accounts.NewStore(store)
	ledgerStore := ledger.NewStore(store)
	prefStore := prefs.NewStore(store)
	txService := services.NewTransactionService(accountStore, ledgerStore, amqpClient)
	defer txService.Close()

	srv := apphttp.NewServer(":"+cfg.Port, accountStore, prefStore, txService, logger)

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

	logger.Info("Starting smartspend server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}
