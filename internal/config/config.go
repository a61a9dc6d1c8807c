package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"art-market/utils"

	"github.com/joho/godotenv"
)

// Session storage backends
const (
	BackendCookie = "cookie"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	Session  SessionConfig
	Redis    RedisConfig
	CORS     CORSConfig
	// SweepSchedule is the cron spec for latching ended auctions
	SweepSchedule string
}

// SessionConfig controls where the single serialized principal is kept
type SessionConfig struct {
	Backend string
	Key     string
	Dir     string
	Secret  string
	TTL     time.Duration
	Secure  bool
	// DemoFallback enables the permissive login for unknown credentials
	DemoFallback bool
}

// RedisConfig holds redis connection settings for the redis session backend
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional; plain environment variables win otherwise
	if err := godotenv.Load(); err != nil {
		utils.Debug("config: .env file not found, using environment variables", nil)
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	sessionCfg, err := loadSessionConfig(appMode)
	if err != nil {
		return nil, err
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Session:  sessionCfg,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       db,
		},
		CORS:          CORSConfig{AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", defaultOrigins(appMode)))},
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@every 1m"),
	}

	return cfg, nil
}

func loadSessionConfig(mode string) (SessionConfig, error) {
	backend := strings.ToLower(getEnv("SESSION_BACKEND", BackendCookie))
	switch backend {
	case BackendCookie, BackendFile, BackendRedis:
	default:
		return SessionConfig{}, fmt.Errorf("invalid SESSION_BACKEND: '%s' (must be cookie, file or redis)", backend)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "168h"))
	if err != nil {
		return SessionConfig{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	secret := getEnv("SESSION_SECRET", "")
	if secret == "" {
		if mode == "prod" {
			return SessionConfig{}, fmt.Errorf("SESSION_SECRET is required in prod mode")
		}
		secret = "dev-session-secret"
	}

	// the permissive demo login stays off in prod unless explicitly enabled
	fallback, err := strconv.ParseBool(getEnv("DEMO_LOGIN_FALLBACK", strconv.FormatBool(mode == "dev")))
	if err != nil {
		return SessionConfig{}, fmt.Errorf("invalid DEMO_LOGIN_FALLBACK: %w", err)
	}

	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", strconv.FormatBool(mode == "prod")))

	return SessionConfig{
		Backend:      backend,
		Key:          getEnv("SESSION_KEY", "user"),
		Dir:          getEnv("SESSION_DIR", "./data"),
		Secret:       secret,
		TTL:          ttl,
		Secure:       secure,
		DemoFallback: fallback,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultOrigins(mode string) string {
	if mode == "dev" {
		return "*"
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
