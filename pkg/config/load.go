package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// LoadConfig loads configuration from the specified path or the working directory.
//
// If configPath is provided, that file must exist. Otherwise .pipupgrade.yml
// in workDir is used when present, and an empty configuration when not.
//
// Parameters:
//   - configPath: path to the config file, or empty to look in workDir
//   - workDir: directory searched for DefaultConfigFile
//
// Returns:
//   - *Config: the loaded configuration, never nil on success
//   - error: read, parse, or validation error
func LoadConfig(configPath, workDir string) (*Config, error) {
	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		verbose.ConfigLoaded(configPath)
		return cfg, nil
	}

	localConfig := filepath.Join(workDir, DefaultConfigFile)
	if _, err := os.Stat(localConfig); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			verbose.Info("No config file found, using defaults")
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := loadConfigFile(localConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	verbose.ConfigLoaded(localConfig)
	return cfg, nil
}

// loadConfigFile reads, parses and validates one config file.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration with Path set
//   - error: error if the file is too large, unreadable, invalid YAML, or invalid
func loadConfigFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfigData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// loadConfigData parses YAML configuration data, rejecting unknown fields.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid, has unknown fields, or fails validation
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
