package server

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Lutefd/travel-journal/internal/commons"
	"github.com/Lutefd/travel-journal/internal/repository"
	"github.com/Lutefd/travel-journal/internal/storage"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	ServerPort      uint16 `env:"SERVER_PORT" env-required:"true"`
	StorageBackend  string `env:"STORAGE_BACKEND" env-default:"redis"`
	StorageKey      string `env:"STORAGE_KEY" env-default:"logs"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPass       string `env:"REDIS_PASSWORD"`
	BadgerDir       string `env:"BADGER_DIR" env-default:"data/badger"`
	SQLitePath      string `env:"SQLITE_PATH" env-default:"travel_logs.db"`
	PostgresConn    string `env:"POSTGRES_CONN"`
	RefreshSchedule string `env:"REFRESH_SCHEDULE"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`
	RateLimitRPS    int    `env:"RATE_LIMIT_RPS" env-default:"10"`
}

func LoadConfig() (Config, error) {
	var config Config
	var errors []string

	if err := cleanenv.ReadEnv(&config); err != nil {
		errors = append(errors, err.Error())
	}

	config.StorageBackend = strings.ToLower(strings.TrimSpace(config.StorageBackend))
	if !slices.Contains(storage.Backends, config.StorageBackend) {
		errors = append(errors, fmt.Sprintf("invalid STORAGE_BACKEND %q, must be one of %s",
			config.StorageBackend, strings.Join(storage.Backends, ", ")))
	}
	if config.StorageBackend == storage.BackendRedis && config.RedisAddr == "" {
		errors = append(errors, "REDIS_ADDR is not set")
	}
	if config.StorageBackend == storage.BackendPostgres && config.PostgresConn == "" {
		errors = append(errors, "POSTGRES_CONN is not set")
	}
	if strings.TrimSpace(config.StorageKey) == "" {
		config.StorageKey = repository.DefaultLogsKey
	}
	if config.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(config.RefreshSchedule); err != nil {
			errors = append(errors, fmt.Sprintf("invalid REFRESH_SCHEDULE: %s", err))
		}
	}
	if _, err := zapcore.ParseLevel(config.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid LOG_LEVEL: %s", err))
	}
	if config.RateLimitRPS <= 0 {
		config.RateLimitRPS = commons.DefaultAllowedRPS
	}

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}

// StorageOptions maps the config onto storage.Open arguments.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:      c.StorageBackend,
		RedisAddr:    c.RedisAddr,
		RedisPass:    c.RedisPass,
		BadgerDir:    c.BadgerDir,
		SQLitePath:   c.SQLitePath,
		PostgresConn: c.PostgresConn,
	}
}
