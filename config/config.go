package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	HTTPHost       string
	HTTPPort       string
	GRPCHost       string
	GRPCPort       string
	DatabaseURL    string
	DatabaseDriver string
	Pool           PoolConfig
	LogLevel       string
	LogFormat      string
}

// PoolConfig bounds the shared *sql.DB connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignores error if not found)
	_ = godotenv.Load()

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DriverPostgres))
	if driver != DriverPostgres && driver != DriverMySQL {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	return &Config{
		HTTPHost:       os.Getenv("HTTP_HOST"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GRPCHost:       os.Getenv("GRPC_HOST"),
		GRPCPort:       getEnv("GRPC_PORT", "9090"),
		DatabaseURL:    databaseURL,
		DatabaseDriver: driver,
		Pool:           loadPoolConfig(),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}, nil
}

func (c *Config) DSN() string {
	return c.DatabaseURL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func loadPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}
