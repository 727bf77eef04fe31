package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// A missing file falls back to defaults
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) {
	// Artifact locations
	if val := os.Getenv("FREQPACK_WORK_DIR"); val != "" {
		cfg.Pipeline.WorkDir = val
	}
	if val := os.Getenv("FREQPACK_INPUT"); val != "" {
		cfg.Pipeline.InputPath = val
	}
	if val := os.Getenv("FREQPACK_COMPRESSED"); val != "" {
		cfg.Pipeline.CompressedPath = val
	}
	if val := os.Getenv("FREQPACK_DECOMPRESSED"); val != "" {
		cfg.Pipeline.DecompressedPath = val
	}

	// Compression settings
	if val := os.Getenv("FREQPACK_COMPRESSION_ALGORITHM"); val != "" {
		cfg.Compression.Algorithm = val
	}
	if val := os.Getenv("FREQPACK_COMPRESSION_LEVEL"); val != "" {
		if level, err := strconv.Atoi(val); err == nil {
			cfg.Compression.Level = level
		}
	}

	if val := os.Getenv("FREQPACK_VERIFY_MODE"); val != "" {
		cfg.Verify.Mode = val
	}
	if val := os.Getenv("FREQPACK_HISTORY_DB"); val != "" {
		cfg.History.DBPath = val
	}

	// Observability
	if val := os.Getenv("OTEL_ENDPOINT"); val != "" {
		cfg.Observability.OTELendpoint = val
	}
	if val := os.Getenv("FREQPACK_LOG_LEVEL"); val != "" {
		cfg.Observability.LogLevel = val
	}
}
