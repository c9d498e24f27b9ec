// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"

	"soilsense/internal/errors"
)

// Config is the complete service configuration.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Batch  BatchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// EngineConfig holds default validation options applied when a request does
// not override them.
type EngineConfig struct {
	StrictMode          bool
	ConfidenceThreshold float64
}

// BatchConfig holds batch-validation settings.
type BatchConfig struct {
	Workers int
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Engine: EngineConfig{
			StrictMode:          getEnvBoolOrDefault("STRICT_MODE", false),
			ConfidenceThreshold: getEnvFloatOrDefault("CONFIDENCE_THRESHOLD", 0.7),
		},
		Batch: BatchConfig{
			Workers: getEnvIntOrDefault("BATCH_WORKERS", 4),
		},
	}

	if cfg.Engine.ConfidenceThreshold < 0 || cfg.Engine.ConfidenceThreshold > 1 {
		return nil, errors.New(errors.CodeConfigInvalid, "CONFIDENCE_THRESHOLD must be in [0,1]")
	}
	if cfg.Batch.Workers < 1 {
		return nil, errors.New(errors.CodeConfigInvalid, "BATCH_WORKERS must be at least 1")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
