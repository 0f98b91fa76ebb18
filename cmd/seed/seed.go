package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Lutefd/travel-journal/internal/repository"
	"github.com/Lutefd/travel-journal/internal/server"
	"github.com/Lutefd/travel-journal/internal/service"
	"github.com/Lutefd/travel-journal/internal/storage"
	"github.com/joho/godotenv"
)

type dependencies struct {
	loadConfig func() (server.Config, error)
	openStore  func(opts storage.Options) (storage.Store, error)
	loadEnv    func(...string) error
}

var defaultDeps = dependencies{
	loadConfig: server.LoadConfig,
	openStore:  storage.Open,
	loadEnv:    godotenv.Load,
}

func main() {
	if err := run(context.Background(), defaultDeps); err != nil {
		log.Fatal(err)
	}
}

// run replaces the persisted collection with the sample logs.
func run(ctx context.Context, deps dependencies) error {
	// a missing .env is fine, the environment may already be set
	_ = deps.loadEnv()

	config, err := deps.loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := deps.openStore(config.StorageOptions())
	if err != nil {
		return fmt.Errorf("error opening %s store: %w", config.StorageBackend, err)
	}
	defer store.Close()

	repo := repository.NewKVLogRepository(store, config.StorageKey)
	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}

	logService := service.NewLogService(repo, nil)
	if err := logService.Load(ctx); err != nil {
		return fmt.Errorf("error seeding logs: %w", err)
	}

	fmt.Printf("Seeded %d sample logs into %q\n", logService.Status().Count, config.StorageKey)
	return nil
}
