package repository

import (
	"context"
	"errors"

	"github.com/Lutefd/travel-journal/internal/model"
)

// ErrNoLogs is returned by Load when nothing has been persisted yet.
var ErrNoLogs = errors.New("no persisted logs")

// LogRepository persists the whole log collection as a single record.
type LogRepository interface {
	Load(ctx context.Context) ([]model.Log, error)
	Save(ctx context.Context, logs []model.Log) error
	Clear(ctx context.Context) error
	Close() error
}
