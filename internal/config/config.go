package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// AuthConfig carries the process-wide token signing state. It is read once at
// startup and never mutated afterwards; there is no runtime secret rotation.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

const defaultTokenTTL = 30 * 24 * time.Hour

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:        opt("DB_HOST"),
		DBPort:        opt("DB_PORT"),
		DBName:        opt("DB_NAME"),
		DBUser:        opt("DB_USER"),
		DBPassword:    opt("DB_PASSWORD"),
		DBSSLMode:     opt("DB_SSL_MODE"),
		MigrationsDir: opt("DB_MIGRATIONS_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationFromEnv("REDIS_TTL", 10*time.Minute),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: req("JWT_SECRET"),
		TokenTTL:  durationFromEnv("TOKEN_TTL", defaultTokenTTL),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
