package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kttyan/genshin-build-viewer/internal/constants"
)

type Config struct {
	Enka      EnkaConfig
	Fetch     FetchConfig
	Reference ReferenceConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	Viewer    ViewerConfig
}

type EnkaConfig struct {
	BaseURL   string
	UserAgent string
}

type FetchConfig struct {
	RelayRoutes    []string
	MaxRetries     int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}

type ReferenceConfig struct {
	CharactersURL  string
	LocURL         string
	Locale         string
	FallbackLocale string
	Timeout        time.Duration
	SnapshotTTL    time.Duration
}

// RedisConfig is optional; an empty Host disables the reference snapshot store.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type LoggingConfig struct {
	Level string
	File  string
}

type ViewerConfig struct {
	DefaultUID string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Enka: EnkaConfig{
			BaseURL:   strings.TrimRight(getEnv("ENKA_API_BASE_URL", constants.APIConfig.EnkaBaseURL), "/"),
			UserAgent: getEnv("ENKA_USER_AGENT", constants.APIConfig.UserAgent),
		},
		Fetch: FetchConfig{
			RelayRoutes:    parseCommaSeparated(getEnv("RELAY_ROUTES", strings.Join(constants.DefaultRelayRoutes, ","))),
			MaxRetries:     getEnvInt("FETCH_MAX_RETRIES", constants.FetchConfig.MaxRetries),
			AttemptTimeout: getEnvMillis("FETCH_ATTEMPT_TIMEOUT_MS", constants.FetchConfig.AttemptTimeout),
			RetryDelay:     getEnvMillis("FETCH_RETRY_DELAY_MS", constants.FetchConfig.RetryDelay),
		},
		Reference: ReferenceConfig{
			CharactersURL:  getEnv("REFERENCE_CHARACTERS_URL", constants.ReferenceConfig.CharactersURL),
			LocURL:         getEnv("REFERENCE_LOC_URL", constants.ReferenceConfig.LocURL),
			Locale:         getEnv("REFERENCE_LOCALE", constants.ReferenceConfig.Locale),
			FallbackLocale: getEnv("REFERENCE_FALLBACK_LOCALE", constants.ReferenceConfig.FallbackLocale),
			Timeout:        time.Duration(getEnvInt("REFERENCE_TIMEOUT_SECONDS", int(constants.ReferenceConfig.Timeout/time.Second))) * time.Second,
			SnapshotTTL:    time.Duration(getEnvInt("REFERENCE_SNAPSHOT_TTL_HOURS", int(constants.ReferenceConfig.SnapshotTTL/time.Hour))) * time.Hour,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Viewer: ViewerConfig{
			DefaultUID: strings.TrimSpace(getEnv("DEFAULT_UID", constants.ViewerConfig.DefaultUID)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Enka.BaseURL == "" {
		return fmt.Errorf("ENKA_API_BASE_URL is required")
	}
	if len(c.Fetch.RelayRoutes) < 2 {
		return fmt.Errorf("RELAY_ROUTES must list at least two routes")
	}
	if c.Fetch.MaxRetries < 1 {
		return fmt.Errorf("FETCH_MAX_RETRIES must be at least 1")
	}
	if c.Fetch.AttemptTimeout <= 0 {
		return fmt.Errorf("FETCH_ATTEMPT_TIMEOUT_MS must be positive")
	}
	if c.Fetch.RetryDelay < 0 {
		return fmt.Errorf("FETCH_RETRY_DELAY_MS must not be negative")
	}
	if c.Reference.Locale == "" && c.Reference.FallbackLocale == "" {
		return fmt.Errorf("REFERENCE_LOCALE or REFERENCE_FALLBACK_LOCALE is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal) * time.Millisecond
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
