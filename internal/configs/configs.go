package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// sqlite allows a single writer, so its pool is pinned to one connection.
	defaultSQLiteMaxOpenConns   = 1
	defaultPostgresMaxOpenConns = 10
)

type Config struct {
	AppHost                 string `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                 int    `env:"APP_PORT" envDefault:"8080"`
	APIPrefix               string `env:"API_PREFIX" envDefault:"/api/task"`
	DatabaseDriver          string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN             string `env:"DATABASE_DSN" envDefault:"tasks.db"`
	DatabaseMaxOpenConns    int    `env:"DATABASE_MAX_OPEN_CONNS"`
	RateLimit               int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RedisAddr               string `env:"REDIS_ADDR"`
	RedisQueueKey           string `env:"REDIS_QUEUE_KEY" envDefault:"annotation:pending"`
	DispatchIntervalSeconds int    `env:"DISPATCH_INTERVAL_SECONDS" envDefault:"30"`
	DispatchBatchSize       int    `env:"DISPATCH_BATCH_SIZE" envDefault:"100"`
	IDMaxAttempts           int    `env:"ID_MAX_ATTEMPTS" envDefault:"10"`
	ShutdownTimeoutSeconds  int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty               bool   `env:"LOG_PRETTY" envDefault:"false"`
	OTelEnabled             bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint            string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"http://127.0.0.1:4318"`
	ServiceName             string `env:"SERVICE_NAME" envDefault:"annotation-registry"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DatabaseMaxOpenConns == 0 {
		switch cfg.DatabaseDriver {
		case DriverSQLite:
			cfg.DatabaseMaxOpenConns = defaultSQLiteMaxOpenConns
		case DriverPostgres:
			cfg.DatabaseMaxOpenConns = defaultPostgresMaxOpenConns
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.AppHost == "" {
		errs = append(errs, errors.New("APP_HOST must not be empty"))
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		errs = append(errs, errors.New("APP_PORT must be between 1 and 65535"))
	}
	if c.DatabaseDriver != DriverSQLite && c.DatabaseDriver != DriverPostgres {
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if c.DatabaseMaxOpenConns <= 0 {
		errs = append(errs, errors.New("DATABASE_MAX_OPEN_CONNS must be greater than 0"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if c.DispatchIntervalSeconds <= 0 {
		errs = append(errs, errors.New("DISPATCH_INTERVAL_SECONDS must be greater than 0"))
	}
	if c.DispatchBatchSize <= 0 {
		errs = append(errs, errors.New("DISPATCH_BATCH_SIZE must be greater than 0"))
	}
	if c.IDMaxAttempts <= 0 {
		errs = append(errs, errors.New("ID_MAX_ATTEMPTS must be greater than 0"))
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	return errors.Join(errs...)
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

func (c Config) DispatchInterval() time.Duration {
	return time.Duration(c.DispatchIntervalSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
