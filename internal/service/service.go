package service

import (
	"context"

	"github.com/Lutefd/travel-journal/internal/model"
)

// LogServiceInterface is the full call contract the HTTP layer consumes.
type LogServiceInterface interface {
	Logs() []model.Log
	Status() Status
	Add(ctx context.Context, entry model.NewLog) (string, error)
	Update(ctx context.Context, id string, patch model.LogPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(id string) (model.Log, bool)
	GetByUser(userID string) []model.Log
	Refresh(ctx context.Context) error
}
