// Package config loads server configuration from the environment.
//
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	Orders OrdersConfig
}

type ServerConfig struct {
	Port        int
	StaticPath  string
	CORSOrigin  string
	Environment string
}

type DBConfig struct {
	Driver string
	Path   string // SQLite file
	URL    string // Postgres connection string
}

type LogConfig struct {
	Level  string
	Format string // "text" (tint) or "json"
}

type OrdersConfig struct {
	// LockRemoval rejects item removal once a group order stops accepting changes.
	LockRemoval bool
	// AllowReopen lets an explicit status update move a closed or finalized
	// group order back to open.
	AllowReopen bool
}

// Load reads configuration from .env and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	lockRemoval, err := strconv.ParseBool(getEnv("ORDERS_LOCK_REMOVAL", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORDERS_LOCK_REMOVAL: %w", err)
	}

	allowReopen, err := strconv.ParseBool(getEnv("ORDERS_ALLOW_REOPEN", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORDERS_ALLOW_REOPEN: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        port,
			StaticPath:  getEnv("STATIC_PATH", "./static"),
			CORSOrigin:  getEnv("CORS_ORIGIN", "*"),
			Environment: getEnv("APP_ENV", "development"),
		},
		DB: DBConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:   getEnv("DB_PATH", "./data/drinkorder.db"),
			URL:    getEnv("DATABASE_URL", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Orders: OrdersConfig{
			LockRemoval: lockRemoval,
			AllowReopen: allowReopen,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
