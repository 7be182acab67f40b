// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every knob the binaries read from the environment.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			HTTPAddr:        getenv("HTTP_ADDR", ":3001"),
			ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
		},
		Postgres: PostgresConfig{
			Host:            getenv("DB_HOST", "localhost"),
			Port:            atoienv("DB_PORT", 5432),
			User:            getenv("DB_USER", "postgres"),
			Password:        getenv("DB_PASSWORD", ""),
			DBName:          getenv("DB_NAME", "leefeettrends_db"),
			SSLMode:         getenv("DB_SSLMODE", "disable"),
			MaxOpenConns:    atoienv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    atoienv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: durenvs("DB_CONN_MAX_LIFETIME", 3600),
		},
		Auth: AuthConfig{
			JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  durenvs("JWT_TTL", 24*3600),
		},
	}
}

// DSN renders the Postgres connection string shared by gorm and the
// database/sql utilities.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
