package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Lutefd/travel-journal/internal/model"
	"github.com/Lutefd/travel-journal/internal/storage"
)

const DefaultLogsKey = "logs"

type KVLogRepository struct {
	store storage.Store
	key   string
}

func NewKVLogRepository(store storage.Store, key string) *KVLogRepository {
	if key == "" {
		key = DefaultLogsKey
	}
	return &KVLogRepository{store: store, key: key}
}

func (r *KVLogRepository) Load(ctx context.Context) ([]model.Log, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNoLogs
		}
		return nil, fmt.Errorf("failed to read %q: %w", r.key, err)
	}

	var logs []model.Log
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", r.key, err)
	}
	if logs == nil {
		logs = []model.Log{}
	}
	return logs, nil
}

func (r *KVLogRepository) Save(ctx context.Context, logs []model.Log) error {
	if logs == nil {
		logs = []model.Log{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to encode logs: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", r.key, err)
	}
	return nil
}

func (r *KVLogRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear %q: %w", r.key, err)
	}
	return nil
}

func (r *KVLogRepository) Close() error {
	return r.store.Close()
}
