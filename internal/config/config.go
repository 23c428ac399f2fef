// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Data modes: remote talks to the hosted record backend, fixture uses the
// seeded in-memory fallback.
const (
	ModeRemote  = "remote"
	ModeFixture = "fixture"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Recordd RecorddConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// BackendConfig holds the record-storage backend settings. ProjectID and
// PublicKey are the two opaque credential strings.
type BackendConfig struct {
	Mode      string // remote / fixture
	BaseURL   string
	ProjectID string
	PublicKey string
	// Delay is the fixed artificial latency applied by the entity services.
	Delay time.Duration
}

// RecorddConfig holds the development record-backend settings.
type RecorddConfig struct {
	Port string
	// DSN selects postgres when set; sqlite file otherwise.
	DSN        string
	SQLitePath string
	Seed       bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev bool
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Backend: BackendConfig{
			Mode:      getEnv("DATA_MODE", ModeFixture),
			BaseURL:   getEnv("PF_BACKEND_URL", "http://localhost:8090"),
			ProjectID: getEnv("PF_PROJECT_ID", ""),
			PublicKey: getEnv("PF_PUBLIC_KEY", ""),
			Delay:     time.Duration(getEnvInt("SERVICE_DELAY_MS", 0)) * time.Millisecond,
		},
		Recordd: RecorddConfig{
			Port:       getEnv("RECORDD_PORT", "8090"),
			DSN:        getEnv("DATABASE_DSN", ""),
			SQLitePath: getEnv("RECORDD_SQLITE", "projectflow_records.db"),
			Seed:       getEnvBool("RECORDD_SEED", false),
		},
		App: AppConfig{
			Dev: getEnvBool("DEV", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
