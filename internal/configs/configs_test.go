package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL())
	assert.Equal(t, "/api/task", cfg.APIPrefix)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
	assert.Equal(t, 1, cfg.DatabaseMaxOpenConns)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 10, cfg.IDMaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.DispatchInterval())
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/tasks")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("ID_MAX_ATTEMPTS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 10, cfg.DatabaseMaxOpenConns)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.IDMaxAttempts)
}

func TestLoad_MaxOpenConnsOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/tasks")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.DatabaseMaxOpenConns)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown driver", key: "DATABASE_DRIVER", val: "mysql"},
		{name: "zero rate limit", key: "RATE_LIMIT_PER_MINUTE", val: "0"},
		{name: "negative attempts", key: "ID_MAX_ATTEMPTS", val: "-1"},
		{name: "negative pool size", key: "DATABASE_MAX_OPEN_CONNS", val: "-1"},
		{name: "not a number", key: "APP_PORT", val: "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.NoError(t, NewLogger("debug", false))
	assert.Error(t, NewLogger("loud", false))
}
