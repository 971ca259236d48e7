// Package config loads tool configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all settings shared by the command-line tools.
type Config struct {
	DocumentTitle  string // Title shown on the gazetteer cover page
	LogLevel       string
	LogDir         string
	MaxLogFileSize int64 // Maximum log file size in bytes
}

// Load reads an optional .env file, then environment variables with
// defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{
		DocumentTitle:  getEnvWithDefault("GAZETTEER_TITLE", "Nixon Memorial Hospital Gazetteer"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		LogDir:         getEnvWithDefault("LOG_DIR", "logs"),
		MaxLogFileSize: getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 10485760), // 10MB default
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validateDocumentTitle(cfg.DocumentTitle); err != nil {
		return fmt.Errorf("invalid GAZETTEER_TITLE: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateLogDir(cfg.LogDir); err != nil {
		return fmt.Errorf("invalid LOG_DIR: %w", err)
	}

	if err := validateMaxLogFileSize(cfg.MaxLogFileSize); err != nil {
		return fmt.Errorf("invalid MAX_LOG_FILE_SIZE: %w", err)
	}

	return nil
}

// validateDocumentTitle validates the GAZETTEER_TITLE environment variable
func validateDocumentTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("GAZETTEER_TITLE cannot be blank")
	}
	return nil
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateLogDir validates the LOG_DIR environment variable
func validateLogDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("LOG_DIR cannot be blank")
	}
	return nil
}

// validateMaxLogFileSize validates the MAX_LOG_FILE_SIZE environment variable
func validateMaxLogFileSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE must be positive, got: %d", size)
	}

	// Minimum 1MB, maximum 1GB
	if size < 1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too small (min 1MB), got: %d bytes", size)
	}

	if size > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too large (max 1GB), got: %d bytes", size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"GAZETTEER_TITLE",
		"LOG_LEVEL",
		"LOG_DIR",
		"MAX_LOG_FILE_SIZE",
	}
}
