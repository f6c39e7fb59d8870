package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
)

// Config stores runtime configuration for the advisor.
type Config struct {
	AppEnv                   string
	ServiceName              string
	LogLevel                 logging.Level
	MatchNameThreshold       int
	MatchFirstTokenThreshold int
	WaiverSuggestionLimit    int
	FreeAgentDisplayLimit    int
	DirectoryCacheEnabled    bool
	DirectoryCacheTTL        time.Duration
	BatchMaxWorkers          int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	serviceName := strings.TrimSpace(getEnv("APP_SERVICE_NAME", "fantasy-lineup"))

	logLevel := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))

	nameThreshold, err := getEnvAsInt("MATCH_NAME_THRESHOLD", 95)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_NAME_THRESHOLD: %w", err)
	}
	if err := validatePercent("MATCH_NAME_THRESHOLD", nameThreshold); err != nil {
		return Config{}, err
	}

	firstTokenThreshold, err := getEnvAsInt("MATCH_FIRST_TOKEN_THRESHOLD", 85)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_FIRST_TOKEN_THRESHOLD: %w", err)
	}
	if err := validatePercent("MATCH_FIRST_TOKEN_THRESHOLD", firstTokenThreshold); err != nil {
		return Config{}, err
	}

	waiverLimit, err := getEnvAsInt("WAIVER_SUGGESTION_LIMIT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WAIVER_SUGGESTION_LIMIT: %w", err)
	}
	if waiverLimit <= 0 {
		return Config{}, fmt.Errorf("WAIVER_SUGGESTION_LIMIT must be > 0")
	}

	freeAgentLimit, err := getEnvAsInt("FREE_AGENT_DISPLAY_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse FREE_AGENT_DISPLAY_LIMIT: %w", err)
	}
	if freeAgentLimit <= 0 {
		return Config{}, fmt.Errorf("FREE_AGENT_DISPLAY_LIMIT must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("DIRECTORY_CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("DIRECTORY_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_CACHE_TTL: %w", err)
	}
	if cacheEnabled && cacheTTL <= 0 {
		return Config{}, fmt.Errorf("DIRECTORY_CACHE_TTL must be > 0 when DIRECTORY_CACHE_ENABLED=true")
	}

	batchWorkers, err := getEnvAsInt("BATCH_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BATCH_MAX_WORKERS: %w", err)
	}
	if batchWorkers <= 0 {
		return Config{}, fmt.Errorf("BATCH_MAX_WORKERS must be > 0")
	}

	return Config{
		AppEnv:                   appEnv,
		ServiceName:              serviceName,
		LogLevel:                 logLevel,
		MatchNameThreshold:       nameThreshold,
		MatchFirstTokenThreshold: firstTokenThreshold,
		WaiverSuggestionLimit:    waiverLimit,
		FreeAgentDisplayLimit:    freeAgentLimit,
		DirectoryCacheEnabled:    cacheEnabled,
		DirectoryCacheTTL:        cacheTTL,
		BatchMaxWorkers:          batchWorkers,
	}, nil
}

func validatePercent(key string, v int) error {
	if v < 1 || v > 100 {
		return fmt.Errorf("%s must be between 1 and 100", key)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
