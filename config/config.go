package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Compression CompressionConfig `yaml:"compression"`
}

// Holds compression-specific configuration.
type CompressionConfig struct {
	Level        int `yaml:"level"`          // Raw numeric compression level (0-9)
	ChunkSizeKiB int `yaml:"chunk_size_kib"` // Output buffer growth increment in KiB
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Compression: CompressionConfig{
			Level:        6,
			ChunkSizeKiB: 16,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Compression.Level < 0 || config.Compression.Level > 9 {
		return fmt.Errorf("compression level must be between 0 and 9")
	}

	if config.Compression.ChunkSizeKiB < 0 {
		return fmt.Errorf("chunk_size_kib must be greater than 0")
	}

	return nil
}
