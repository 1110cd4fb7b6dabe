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

// Used when JWT_SECRET is not set outside release mode.
const devSecret = "dev-secret-change-me"

const defaultPostgresDSN = "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"

type Config struct {
	Port        string
	DBDriver    string
	DBDSN       string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	RabbitMQURL string
	EventsQueue string
	StaticDir   string
	LogLevel    string
	LogFormat   string
	GinMode     string
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDSN:       os.Getenv("DB_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		EventsQueue: getEnv("EVENTS_QUEUE", "jobboard_events"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		GinMode:     getEnv("GIN_MODE", "debug"),
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBDSN == "" {
			cfg.DBDSN = defaultPostgresDSN
		}
	case "mysql", "sqlite":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for driver %q", cfg.DBDriver)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	hours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS %q", os.Getenv("TOKEN_TTL_HOURS"))
	}
	cfg.TokenTTL = time.Duration(hours) * time.Hour

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			return nil, errors.New("JWT_SECRET must be set in release mode")
		}
		cfg.JWTSecret = devSecret
	}

	return cfg, nil
}

// UsesDevSecret reports whether the built-in development secret is active.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == devSecret
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
