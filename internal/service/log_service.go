package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lutefd/travel-journal/internal/idgen"
	"github.com/Lutefd/travel-journal/internal/logger"
	"github.com/Lutefd/travel-journal/internal/model"
	"github.com/Lutefd/travel-journal/internal/repository"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Status is the read-only view of the store's flags.
type Status struct {
	State   State  `json:"-"`
	Ready   bool   `json:"ready"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Count   int    `json:"count"`
}

// LogService owns the in-memory log collection and mirrors every
// committed mutation to the repository as a full snapshot.
//
// opMu serialises operations end to end, persistence included. mu guards
// the collection and the flags; it is never held across repository I/O,
// so readers see the last applied state while a write is in flight.
type LogService struct {
	repo  repository.LogRepository
	ids   idgen.Generator
	opMu  sync.Mutex
	mu    sync.RWMutex
	state State
	// loading counts in-flight operations that touch the repository.
	loading int
	lastErr string
	logs    []model.Log
	byID    map[string]int
	byUser  map[string][]string
}

func NewLogService(repo repository.LogRepository, ids idgen.Generator) *LogService {
	if ids == nil {
		ids = idgen.UUIDGenerator{}
	}
	return &LogService{
		repo:   repo,
		ids:    ids,
		logs:   []model.Log{},
		byID:   map[string]int{},
		byUser: map[string][]string{},
	}
}

// Load performs the initial read. The store ends up Ready even when the
// read fails; the failure is reported through the error flag and the
// returned error.
func (s *LogService) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	err := s.load(ctx, "Failed to load logs")

	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()
	return err
}

// Refresh re-reads the persisted collection and replaces the in-memory
// one. A failed read keeps the current collection.
func (s *LogService) Refresh(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.load(ctx, "Failed to refresh logs")

	s.mu.Lock()
	if s.state != StateReady {
		s.state = StateReady
	}
	s.mu.Unlock()
	return err
}

func (s *LogService) load(ctx context.Context, failMsg string) error {
	s.beginIO()
	defer s.endIO()

	logs, err := s.repo.Load(ctx)
	if errors.Is(err, repository.ErrNoLogs) {
		logs = model.SampleLogs()
		s.replace(logs)
		if err := s.repo.Save(ctx, logs); err != nil {
			logger.Errorw("failed to persist seed logs", "error", err)
			return s.fail(fmt.Errorf("%w: %w", model.ErrPersistence, err), "Failed to save sample logs")
		}
		logger.Infow("seeded log collection", "count", len(logs))
		s.clearError()
		return nil
	}
	if err != nil {
		logger.Errorw("failed to load logs", "error", err)
		return s.fail(fmt.Errorf("%w: %w", model.ErrLoad, err), failMsg)
	}

	s.replace(logs)
	s.clearError()
	return nil
}

// Add validates entry, stores it under a fresh id and persists the
// collection. When persisting fails the entry stays in memory.
func (s *LogService) Add(ctx context.Context, entry model.NewLog) (string, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := entry.Validate(); err != nil {
		return "", s.fail(err, err.Error())
	}

	s.mu.Lock()
	id := s.nextID()
	l := entry.WithID(id)
	s.logs = append(s.logs, l)
	s.byID[id] = len(s.logs) - 1
	s.byUser[l.UserID] = append(s.byUser[l.UserID], id)
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return id, s.fail(err, "Failed to add log")
	}
	s.clearError()
	return id, nil
}

// Update merges patch into the entry with the given id. The merged entry
// must still pass validation.
func (s *LogService) Update(ctx context.Context, id string, patch model.LogPatch) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	pos, ok := s.byID[id]
	var current model.Log
	if ok {
		current = s.logs[pos]
	}
	s.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %s", model.ErrLogNotFound, id)
		return s.fail(err, "Log not found")
	}

	updated := patch.Apply(current)
	if err := updated.Validate(); err != nil {
		return s.fail(err, err.Error())
	}

	s.mu.Lock()
	s.logs[pos] = updated
	if updated.UserID != current.UserID {
		s.reindex()
	}
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return s.fail(err, "Failed to update log")
	}
	s.clearError()
	return nil
}

// Delete removes the entry with the given id. Deleting an unknown id is
// a no-op and does not touch the repository.
func (s *LogService) Delete(ctx context.Context, id string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	pos, ok := s.byID[id]
	if ok {
		s.logs = append(s.logs[:pos], s.logs[pos+1:]...)
		s.reindex()
	}
	s.mu.Unlock()

	if !ok {
		s.clearError()
		return nil
	}

	if err := s.persist(ctx); err != nil {
		return s.fail(err, "Failed to delete log")
	}
	s.clearError()
	return nil
}

func (s *LogService) GetByID(id string) (model.Log, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.byID[id]
	if !ok {
		return model.Log{}, false
	}
	return s.logs[pos].Clone(), true
}

// GetByUser returns the user's logs in collection order.
func (s *LogService) GetByUser(userID string) []model.Log {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	out := make([]model.Log, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.logs[s.byID[id]].Clone())
	}
	return out
}

// Logs returns a copy of the whole collection.
func (s *LogService) Logs() []model.Log {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Log, len(s.logs))
	for i, l := range s.logs {
		out[i] = l.Clone()
	}
	return out
}

func (s *LogService) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		State:   s.state,
		Ready:   s.state == StateReady,
		Loading: s.state == StateLoading || s.loading > 0,
		Error:   s.lastErr,
		Count:   len(s.logs),
	}
}

func (s *LogService) persist(ctx context.Context) error {
	snapshot := s.Logs()

	s.beginIO()
	defer s.endIO()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		logger.Errorw("failed to persist logs", "count", len(snapshot), "error", err)
		return fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}
	return nil
}

const maxIDAttempts = 16

// nextID draws ids until one is unused, falling back to a random UUID if
// the generator keeps colliding. Callers hold mu.
func (s *LogService) nextID() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.Next()
		if _, taken := s.byID[id]; !taken && id != "" {
			return id
		}
	}
	for {
		id := idgen.UUIDGenerator{}.Next()
		if _, taken := s.byID[id]; !taken {
			return id
		}
	}
}

// replace adopts logs as the collection. Entries repeating an earlier id
// are dropped so every id names exactly one entry.
func (s *LogService) replace(logs []model.Log) {
	kept := make([]model.Log, 0, len(logs))
	seen := make(map[string]struct{}, len(logs))
	var dropped []string
	for _, l := range logs {
		if _, dup := seen[l.ID]; dup {
			dropped = append(dropped, l.ID)
			continue
		}
		seen[l.ID] = struct{}{}
		kept = append(kept, l.Clone())
	}
	if len(dropped) > 0 {
		logger.Warnw("dropped log entries with duplicate ids", "ids", dropped)
	}

	s.mu.Lock()
	s.logs = kept
	s.reindex()
	s.mu.Unlock()
}

// reindex rebuilds both lookup maps from the collection. Callers hold mu.
func (s *LogService) reindex() {
	s.byID = make(map[string]int, len(s.logs))
	s.byUser = make(map[string][]string)
	for i, l := range s.logs {
		s.byID[l.ID] = i
		s.byUser[l.UserID] = append(s.byUser[l.UserID], l.ID)
	}
}

func (s *LogService) fail(err error, msg string) error {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return err
}

func (s *LogService) clearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *LogService) beginIO() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *LogService) endIO() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}
