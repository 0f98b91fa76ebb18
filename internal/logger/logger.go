package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.SugaredLogger
)

func init() {
	l, err := newLogger(zapcore.InfoLevel)
	if err != nil {
		l = zap.NewNop()
	}
	log = l.Sugar()
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Init replaces the process logger with a production logger at the given
// level ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l, err := newLogger(lvl)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Set(l.Sugar())
	return nil
}

// Get returns the process logger for components that take one explicitly.
func Get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Set(l *zap.SugaredLogger) {
	mu.Lock()
	log = l
	mu.Unlock()
}

func Info(v ...interface{}) {
	Get().Info(v...)
}

func Infof(format string, v ...interface{}) {
	Get().Infof(format, v...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Get().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Get().Warnw(msg, keysAndValues...)
}

func Error(v ...interface{}) {
	Get().Error(v...)
}

func Errorf(format string, v ...interface{}) {
	Get().Errorf(format, v...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Get().Errorw(msg, keysAndValues...)
}

// Shutdown flushes buffered entries. Sync errors on stdout/stderr are
// expected on some platforms and are not reported.
func Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		_ = Get().Sync()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
