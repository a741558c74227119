package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Remote Data Source
	APIKey      string // optional: seeds the credential store when set
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Dashboard Parameters
	Symbol         string // default ticker for a cycle
	ShortSMAPeriod int    // e.g., 50
	LongSMAPeriod  int    // e.g., 200
	RSIPeriod      int    // period the remote RSI endpoint is asked for
	NewsLimit      int    // max news items shown by the presenter

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel // Use the LogLevel type from the logger adapter
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Remote Data Source
	cfg.APIKey = getEnv("FINNHUB_API_KEY", "")
	cfg.APIBaseURL = getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")
	if cfg.APIBaseURL == "" {
		errs = append(errs, "FINNHUB_BASE_URL must be set")
	}

	timeoutSeconds, err := getEnvAsIntRequired("HTTP_TIMEOUT_SECONDS", 15)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid HTTP_TIMEOUT_SECONDS: %v", err))
	} else if timeoutSeconds <= 0 {
		errs = append(errs, "HTTP_TIMEOUT_SECONDS must be positive")
	}
	cfg.HTTPTimeout = time.Duration(timeoutSeconds) * time.Second

	// Dashboard Parameters
	cfg.Symbol = getEnv("SYMBOL", "AAPL")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}

	cfg.ShortSMAPeriod, err = getEnvAsIntRequired("SHORT_SMA_PERIOD", 50)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid SHORT_SMA_PERIOD: %v", err))
	} else if cfg.ShortSMAPeriod < 1 {
		errs = append(errs, "SHORT_SMA_PERIOD must be positive")
	}

	cfg.LongSMAPeriod, err = getEnvAsIntRequired("LONG_SMA_PERIOD", 200)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid LONG_SMA_PERIOD: %v", err))
	} else if cfg.LongSMAPeriod < 1 {
		errs = append(errs, "LONG_SMA_PERIOD must be positive")
	}

	if cfg.ShortSMAPeriod >= cfg.LongSMAPeriod {
		errs = append(errs, "SHORT_SMA_PERIOD must be less than LONG_SMA_PERIOD")
	}

	cfg.RSIPeriod = getEnvAsInt("RSI_PERIOD", 14)
	if cfg.RSIPeriod < 1 {
		errs = append(errs, "RSI_PERIOD must be positive")
	}

	cfg.NewsLimit = getEnvAsInt("NEWS_LIMIT", 10)
	if cfg.NewsLimit < 0 {
		errs = append(errs, "NEWS_LIMIT cannot be negative")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/dashboard.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
