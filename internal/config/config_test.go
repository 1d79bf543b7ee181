package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:     "development",
		DatabaseDriver:  "postgres",
		DatabaseName:    "pg_management",
		JWTSecret:       "secret",
		JWTTTL:          720 * time.Hour,
		Timezone:        "UTC",
		MaxUploadSizeMB: 10,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production refuses default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		cfg.JWTSecret = defaultJWTSecret
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET must be set in production")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTTTL = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseDriver = "mongodb"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported DATABASE_DRIVER")
	})

	t.Run("sqlite does not need a database name", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseDriver = "sqlite"
		cfg.DatabaseName = ""
		assert.NoError(t, validate(cfg))
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := validConfig()
		cfg.Timezone = "Mars/Olympus"
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseDriver:   "postgres",
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "pg",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/pg?sslmode=disable", buildDatabaseURL(cfg))

	cfg.DatabaseDriver = "sqlite"
	cfg.SQLitePath = "local.db"
	assert.Equal(t, "local.db", buildDatabaseURL(cfg))
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Local"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{MaxUploadSizeMB: 2}
	assert.Equal(t, int64(2*1024*1024), cfg.MaxUploadBytes())
}
