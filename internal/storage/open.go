package storage

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendBadger   = "badger"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Backends lists the accepted values of Options.Backend.
var Backends = []string{BackendMemory, BackendRedis, BackendBadger, BackendSQLite, BackendPostgres}

type Options struct {
	Backend      string
	RedisAddr    string
	RedisPass    string
	BadgerDir    string
	SQLitePath   string
	PostgresConn string
	Logger       *zap.SugaredLogger
}

// Open connects to the backend named in opts.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisPass)
	case BackendBadger:
		return NewBadgerStore(opts.BadgerDir, opts.Logger)
	case BackendSQLite:
		return NewSQLiteStore(opts.SQLitePath)
	case BackendPostgres:
		return NewPostgresStore(opts.PostgresConn, nil)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
