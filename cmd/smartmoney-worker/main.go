package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/lokesh-122/SmartMoney/internal/amqp"
	"github.com/lokesh-122/SmartMoney/internal/config"
	"github.com/lokesh-122/SmartMoney/internal/ledger"
	ledgergoogle "github.com/lokesh-122/SmartMoney/internal/ledger/google"
	ledgermem "github.com/lokesh-122/SmartMoney/internal/ledger/memory"
	applog "github.com/lokesh-122/SmartMoney/internal/log"
	"github.com/lokesh-122/SmartMoney/internal/storage"
	"github.com/lokesh-122/SmartMoney/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	applog.SetDefault(logger)

	logger.Info("Starting smartmoney-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ledger backend: Google Sheets when configured, in-memory otherwise.
	var (
		writer  ledger.TransactionWriter
		deleter ledger.TransactionDeleter
	)
	if cfg.LedgerSpreadsheetID != "" {
		client, err := ledgergoogle.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets ledger", "error", err)
			os.Exit(1)
		}
		writer, deleter = client, client
		logger.Info("Google Sheets ledger initialized", "spreadsheet_id", cfg.LedgerSpreadsheetID)
	} else {
		store := ledgermem.New()
		writer, deleter = store, store
		logger.Warn("No LEDGER_SPREADSHEET_ID provided, using in-memory ledger")
	}

	amqpClient, err := amqp.DialWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	syncWorker := worker.NewSyncWorker(repo, writer, deleter, cfg.SyncBatchSize)

	// Startup catch-up: mirror anything written while the worker was down.
	if err := syncWorker.ProcessPendingTransactions(ctx); err != nil {
		logger.Error("Startup catch-up failed", "error", err)
		// Don't exit - continue with normal operation
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := amqpClient.ConsumeMessages(gctx, syncWorker.HandleMessage)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := syncWorker.ProcessPendingTransactions(gctx); err != nil {
					logger.Error("Periodic catch-up failed", "error", err)
				}
			}
		}
	})

	logger.Info("Worker running",
		"queue", cfg.AMQPQueue,
		"sync_interval", cfg.SyncInterval,
		"batch_size", cfg.SyncBatchSize)

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
