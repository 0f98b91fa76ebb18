package main

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Lutefd/travel-journal/internal/model"
	"github.com/Lutefd/travel-journal/internal/repository"
	"github.com/Lutefd/travel-journal/internal/server"
	"github.com/Lutefd/travel-journal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDeps(store storage.Store) dependencies {
	return dependencies{
		loadConfig: func() (server.Config, error) {
			return server.Config{StorageBackend: storage.BackendMemory, StorageKey: "logs"}, nil
		},
		openStore: func(opts storage.Options) (storage.Store, error) {
			return store, nil
		},
		loadEnv: func(...string) error {
			return errors.New("no .env")
		},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := repository.NewKVLogRepository(store, "logs")

	existing := model.SampleLogs()[:1]
	existing[0].Title = "Edited"
	require.NoError(t, repo.Save(ctx, existing))

	require.NoError(t, run(ctx, memoryDeps(store)))

	logs, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SampleLogs(), logs)
}

func TestRun_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	deps := dependencies{
		loadConfig: func() (server.Config, error) {
			return server.Config{StorageBackend: storage.BackendPostgres, StorageKey: "logs", PostgresConn: "mock"}, nil
		},
		openStore: func(opts storage.Options) (storage.Store, error) {
			assert.Equal(t, "mock", opts.PostgresConn)
			return storage.NewPostgresStore(opts.PostgresConn, db)
		},
		loadEnv: func(...string) error {
			return nil
		},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1`)).
		WithArgs("logs").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("logs").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("logs", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectClose()

	assert.NoError(t, run(context.Background(), deps))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Errors(t *testing.T) {
	t.Run("Config error", func(t *testing.T) {
		deps := memoryDeps(storage.NewMemoryStore())
		deps.loadConfig = func() (server.Config, error) {
			return server.Config{}, errors.New("configuration errors occurred")
		}

		err := run(context.Background(), deps)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error loading config")
	})

	t.Run("Store error", func(t *testing.T) {
		deps := memoryDeps(nil)
		deps.openStore = func(opts storage.Options) (storage.Store, error) {
			return nil, errors.New("connection refused")
		}

		err := run(context.Background(), deps)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error opening memory store")
	})
}
