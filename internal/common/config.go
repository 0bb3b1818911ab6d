package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Batch  BatchConfig
	Ingest IngestConfig
	Export ExportConfig
	Vendor VendorConfig
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Concurrency   int
	MinConfidence float64
}

// IngestConfig holds directory-ingestion configuration
type IngestConfig struct {
	Debounce    time.Duration
	InitialScan bool
}

// ExportConfig holds XLSX export configuration
type ExportConfig struct {
	OutputPath string
}

// VendorConfig holds the optional vendor-alias override file
type VendorConfig struct {
	AliasFile string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			Concurrency:   getEnvAsInt("BATCH_CONCURRENCY", 4),
			MinConfidence: getEnvAsFloat64("MIN_CONFIDENCE", 0.60),
		},
		Ingest: IngestConfig{
			Debounce:    getEnvAsDuration("INGEST_DEBOUNCE", 500*time.Millisecond),
			InitialScan: getEnvAsBool("INGEST_INITIAL_SCAN", true),
		},
		Export: ExportConfig{
			OutputPath: getEnv("EXPORT_PATH", ""),
		},
		Vendor: VendorConfig{
			AliasFile: getEnv("VENDOR_ALIAS_FILE", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Batch.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_CONCURRENCY must be >= 1", ErrValidation)
	}
	if c.Batch.MinConfidence < 0 || c.Batch.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "MIN_CONFIDENCE must be in [0,1]", ErrValidation)
	}
	return nil
}
