package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/freqpack/freqpack/internal/compression"
	"github.com/freqpack/freqpack/internal/verify"
)

// Packing modes for the bit sequence payload
const (
	PackingByte = "byte" // one byte per bit, values 0 or 1
	PackingBits = "bits" // eight bits per byte, MSB first
)

// Config represents the complete application configuration
type Config struct {
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	Pairs         PairsConfig         `yaml:"pairs"`
	Compression   CompressionConfig   `yaml:"compression"`
	Verify        VerifyConfig        `yaml:"verify"`
	History       HistoryConfig       `yaml:"history"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PipelineConfig contains artifact locations and payload settings
type PipelineConfig struct {
	WorkDir          string `yaml:"work_dir"`
	InputPath        string `yaml:"input_path"`
	CompressedPath   string `yaml:"compressed_path"`
	DecompressedPath string `yaml:"decompressed_path"`
	Packing          string `yaml:"packing"`
	Strict           bool   `yaml:"strict"` // treat a failed verdict as an error
}

// PairsConfig holds the two character sets; every character of a string is a member
type PairsConfig struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// CompressionConfig contains codec settings
type CompressionConfig struct {
	Algorithm string `yaml:"algorithm"`
	Level     int    `yaml:"level"`
}

// VerifyConfig selects the round trip check
type VerifyConfig struct {
	Mode string `yaml:"mode"`
}

// HistoryConfig controls the run history database. An empty path disables it.
type HistoryConfig struct {
	DBPath string `yaml:"db_path"`
}

// ObservabilityConfig contains observability settings
type ObservabilityConfig struct {
	OTELendpoint   string `yaml:"otel_endpoint"`
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	TracingEnabled bool   `yaml:"tracing_enabled"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			WorkDir:          ".",
			InputPath:        "input.txt",
			CompressedPath:   "compressed.gz",
			DecompressedPath: "decompressed.txt",
			Packing:          PackingByte,
			Strict:           false,
		},
		Pairs: PairsConfig{
			First:  "AB",
			Second: "CD",
		},
		Compression: CompressionConfig{
			Algorithm: compression.AlgorithmGzip,
			Level:     6,
		},
		Verify: VerifyConfig{
			Mode: verify.ModeSize,
		},
		History: HistoryConfig{
			DBPath: "",
		},
		Observability: ObservabilityConfig{
			OTELendpoint:   "",
			LogLevel:       "info",
			MetricsEnabled: false,
			TracingEnabled: false,
		},
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.Pipeline.WorkDir == "" {
		return fmt.Errorf("pipeline.work_dir is required")
	}
	info, err := os.Stat(c.Pipeline.WorkDir)
	if err != nil {
		return fmt.Errorf("cannot access work dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("work dir path is not a directory")
	}

	if c.Pipeline.InputPath == "" {
		return fmt.Errorf("pipeline.input_path is required")
	}
	if c.Pipeline.CompressedPath == "" {
		return fmt.Errorf("pipeline.compressed_path is required")
	}
	if c.Pipeline.DecompressedPath == "" {
		return fmt.Errorf("pipeline.decompressed_path is required")
	}
	if c.Pipeline.Packing != PackingByte && c.Pipeline.Packing != PackingBits {
		return fmt.Errorf("pipeline.packing must be 'byte' or 'bits'")
	}

	if err := c.Compression.Validate(); err != nil {
		return fmt.Errorf("compression config: %w", err)
	}

	if c.Verify.Mode != verify.ModeSize && c.Verify.Mode != verify.ModeContent {
		return fmt.Errorf("verify.mode must be one of: size, content")
	}

	if c.Observability.LogLevel != "debug" &&
		c.Observability.LogLevel != "info" &&
		c.Observability.LogLevel != "warn" &&
		c.Observability.LogLevel != "error" {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}

	return nil
}

// Validate validates compression configuration
func (cc *CompressionConfig) Validate() error {
	switch cc.Algorithm {
	case compression.AlgorithmGzip, compression.AlgorithmZstd,
		compression.AlgorithmLZ4, compression.AlgorithmNone:
	default:
		return fmt.Errorf("compression algorithm must be one of: gzip, zstd, lz4, none")
	}
	return compression.ValidateLevel(cc.Algorithm, cc.Level)
}

// resolve joins p onto the work dir unless it is already absolute
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Pipeline.WorkDir, p)
}

// GetInputPath returns the input artifact path
func (c *Config) GetInputPath() string {
	return c.resolve(c.Pipeline.InputPath)
}

// GetCompressedPath returns the compressed artifact path
func (c *Config) GetCompressedPath() string {
	return c.resolve(c.Pipeline.CompressedPath)
}

// GetDecompressedPath returns the decompressed artifact path
func (c *Config) GetDecompressedPath() string {
	return c.resolve(c.Pipeline.DecompressedPath)
}

// GetHistoryPath returns the run history database path, or "" when disabled
func (c *Config) GetHistoryPath() string {
	if c.History.DBPath == "" {
		return ""
	}
	return c.resolve(c.History.DBPath)
}
