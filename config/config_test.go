package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":3001", cfg.Server.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Server.HTTPAddr)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestDSN(t *testing.T) {
	pg := PostgresConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "admin",
		Password: "pw",
		DBName:  "shop",
		SSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=admin password=pw dbname=shop sslmode=disable",
		pg.DSN())
}
