package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// LogRefresher re-reads the persisted log collection.
type LogRefresher interface {
	Refresh(ctx context.Context) error
}

// Refresher runs LogRefresher.Refresh on a cron schedule so entries written
// to the shared store by other processes show up without a restart.
type Refresher struct {
	target  LogRefresher
	cron    *cron.Cron
	timeout time.Duration
	logger  *zap.SugaredLogger

	mu      sync.Mutex
	started bool
}

const defaultRefreshTimeout = 30 * time.Second

// NewRefresher returns nil when schedule is empty, meaning scheduled
// refresh is disabled. A schedule that does not parse is an error.
func NewRefresher(target LogRefresher, schedule string, logger *zap.SugaredLogger) (*Refresher, error) {
	if schedule == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	c := cron.New()
	r := &Refresher{
		target:  target,
		cron:    c,
		timeout: defaultRefreshTimeout,
		logger:  logger,
	}

	if _, err := c.AddFunc(schedule, r.refreshWrapper); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs the schedule until ctx is cancelled. Calling Start on a nil
// Refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	r.cron.Start()
	r.logger.Infow("log refresher started")

	go func() {
		<-ctx.Done()
		<-r.cron.Stop().Done()
		r.logger.Infow("log refresher stopped")
	}()
}

// RunOnce performs a single refresh with the configured timeout.
func (r *Refresher) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.target.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh logs: %w", err)
	}
	r.logger.Infow("logs refreshed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (r *Refresher) refreshWrapper() {
	if err := r.RunOnce(context.Background()); err != nil {
		r.logger.Errorw("scheduled refresh failed", "error", err)
	}
}
