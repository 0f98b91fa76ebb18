package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lutefd/travel-journal/internal/model"
	"github.com/Lutefd/travel-journal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	storage.Store
	err error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, s.err
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.err
}

func TestKVLogRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent record", func(t *testing.T) {
		repo := NewKVLogRepository(storage.NewMemoryStore(), "")

		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, ErrNoLogs)
	})

	t.Run("Round trip", func(t *testing.T) {
		repo := NewKVLogRepository(storage.NewMemoryStore(), "")
		logs := model.SampleLogs()

		require.NoError(t, repo.Save(ctx, logs))
		loaded, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, logs, loaded)
	})

	t.Run("Empty collection", func(t *testing.T) {
		store := storage.NewMemoryStore()
		repo := NewKVLogRepository(store, "")

		require.NoError(t, repo.Save(ctx, nil))
		raw, err := store.Get(ctx, DefaultLogsKey)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, loaded)
		assert.Empty(t, loaded)
	})

	t.Run("Corrupt record", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, DefaultLogsKey, []byte("{not json")))
		repo := NewKVLogRepository(store, "")

		_, err := repo.Load(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoLogs)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("Store failure", func(t *testing.T) {
		boom := errors.New("disk on fire")
		repo := NewKVLogRepository(&failingStore{err: boom}, "")

		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestKVLogRepository_CustomKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewKVLogRepository(store, "journal")

	require.NoError(t, repo.Save(ctx, model.SampleLogs()))

	_, err := store.Get(ctx, "journal")
	assert.NoError(t, err)
	_, err = store.Get(ctx, DefaultLogsKey)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestKVLogRepository_Save(t *testing.T) {
	boom := errors.New("read-only filesystem")
	repo := NewKVLogRepository(&failingStore{err: boom}, "")

	err := repo.Save(context.Background(), model.SampleLogs())
	assert.ErrorIs(t, err, boom)
}

func TestKVLogRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLogRepository(storage.NewMemoryStore(), "")

	require.NoError(t, repo.Save(ctx, model.SampleLogs()))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNoLogs)
}
