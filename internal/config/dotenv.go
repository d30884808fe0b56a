package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Port                     string
	StoreBackend             string
	RedisURL                 string
	DatabaseURL              string
	DocumentTTLHours         int
	TurnSeconds              int
	RateLimitRPS             float64
	RateLimitBurst           int
	LogLevel                 string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
}

func Default() Config {
	return Config{
		Port:                     "8080",
		StoreBackend:             BackendMemory,
		DocumentTTLHours:         24,
		TurnSeconds:              60,
		RateLimitRPS:             10,
		RateLimitBurst:           20,
		LogLevel:                 "info",
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := os.Getenv("REDIS_URL"); raw != "" {
		cfg.RedisURL = raw
		cfg.StoreBackend = BackendRedis
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.DatabaseURL = raw
	}
	if raw := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_BACKEND"))); raw != "" {
		switch raw {
		case BackendMemory, BackendRedis, BackendPostgres:
			cfg.StoreBackend = raw
		}
	}
	if raw := os.Getenv("DOCUMENT_TTL_HOURS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DocumentTTLHours = value
		}
	}
	if raw := os.Getenv("TURN_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.TurnSeconds = value
		}
	}
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.RateLimitBurst = value
		}
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = strings.ToLower(raw)
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	return cfg
}

func (c Config) DocumentTTL() time.Duration {
	return time.Duration(c.DocumentTTLHours) * time.Hour
}

func (c Config) TurnDuration() time.Duration {
	return time.Duration(c.TurnSeconds) * time.Second
}

func (c Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeSeconds) * time.Second
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
