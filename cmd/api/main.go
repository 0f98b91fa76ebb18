package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lutefd/travel-journal/internal/idgen"
	"github.com/Lutefd/travel-journal/internal/logger"
	"github.com/Lutefd/travel-journal/internal/repository"
	"github.com/Lutefd/travel-journal/internal/server"
	"github.com/Lutefd/travel-journal/internal/service"
	"github.com/Lutefd/travel-journal/internal/storage"
	"github.com/Lutefd/travel-journal/internal/worker"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env")
	config, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(config.LogLevel); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, config)
	cancel()

	flushCtx, flushCancel := context.WithTimeout(context.Background(), time.Second)
	defer flushCancel()
	_ = logger.Shutdown(flushCtx)

	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, config server.Config) error {
	opts := config.StorageOptions()
	opts.Logger = logger.Get()
	store, err := storage.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", config.StorageBackend, err)
	}
	repo := repository.NewKVLogRepository(store, config.StorageKey)
	defer repo.Close()

	logService := service.NewLogService(repo, idgen.UUIDGenerator{})
	// a failed initial load leaves the store ready and empty with the
	// error flag set, the server still starts
	if err := logService.Load(ctx); err != nil {
		logger.Errorw("initial load failed", "error", err)
	}
	logger.Infow("log store ready", "backend", config.StorageBackend, "count", logService.Status().Count)

	refresher, err := worker.NewRefresher(logService, config.RefreshSchedule, logger.Get())
	if err != nil {
		return err
	}
	refresher.Start(ctx)

	srv := server.NewServer(config, logService, logger.Get())
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
