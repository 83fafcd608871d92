// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/crypto"
)

// Backend names
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	// DBPath is the path to the local database file.
	DBPath string

	// Backend selects the storage engine: bolt or sqlite.
	Backend string

	// HashScheme selects how new passwords are hashed. The default is
	// the legacy sha256 scheme for compatibility with existing stores.
	HashScheme crypto.Scheme

	// SessionTTL is how long a login stays valid.
	SessionTTL time.Duration

	// LogLevel is the slog level for diagnostics.
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over .env entries.
func Load() *Config {
	// godotenv does not override variables that are already set.
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("TAGIHAN_DB_PATH", "tagihan.db"),
		Backend:    getEnv("TAGIHAN_BACKEND", BackendBolt),
		HashScheme: crypto.Scheme(getEnv("TAGIHAN_HASH_SCHEME", string(crypto.SchemeSHA256))),
		SessionTTL: getEnvDuration("TAGIHAN_SESSION_TTL", 30*24*time.Hour),
		LogLevel:   parseLogLevel(getEnv("TAGIHAN_LOG_LEVEL", "info")),
	}
}

// Validate checks the configuration and returns an error describing every
// invalid field.
func (c *Config) Validate() error {
	var problems []string

	if c.DBPath == "" {
		problems = append(problems, "database path must not be empty")
	}

	switch c.Backend {
	case BackendBolt, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend %q: must be %q or %q", c.Backend, BackendBolt, BackendSQLite))
	}

	switch c.HashScheme {
	case crypto.SchemeSHA256, crypto.SchemeArgon2id:
	default:
		problems = append(problems, fmt.Sprintf("invalid hash scheme %q: must be %q or %q", c.HashScheme, crypto.SchemeSHA256, crypto.SchemeArgon2id))
	}

	if c.SessionTTL <= 0 {
		problems = append(problems, "session TTL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
