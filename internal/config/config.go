// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Output struct {
		Dir        string `yaml:"dir"`
		FilePrefix string `yaml:"file_prefix"`
	} `yaml:"output"`

	Defaults struct {
		Language string `yaml:"language"`
	} `yaml:"defaults"`

	Server struct {
		Address      string `yaml:"address"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
		Debug        bool   `yaml:"debug"`
	} `yaml:"server"`
}

// ParsedConfig contains parsed time.Duration values for easier use
type ParsedConfig struct {
	Config
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Default returns the configuration used when no file is given
func Default() *ParsedConfig {
	cfg := &ParsedConfig{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	cfg.Output.Dir = "."
	cfg.Defaults.Language = "en"
	cfg.Server.Address = ":8080"
	return cfg
}

// Load loads configuration from a YAML file
func Load(path string) (*ParsedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	parsed := Default()
	if cfg.Output.Dir != "" {
		parsed.Output.Dir = cfg.Output.Dir
	}
	parsed.Output.FilePrefix = cfg.Output.FilePrefix
	if cfg.Defaults.Language != "" {
		parsed.Defaults.Language = cfg.Defaults.Language
	}
	if cfg.Server.Address != "" {
		parsed.Server.Address = cfg.Server.Address
	}
	parsed.Server.Debug = cfg.Server.Debug

	if cfg.Server.ReadTimeout != "" {
		parsed.ReadTimeout, err = time.ParseDuration(cfg.Server.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid read_timeout: %w", err)
		}
	}
	if cfg.Server.WriteTimeout != "" {
		parsed.WriteTimeout, err = time.ParseDuration(cfg.Server.WriteTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid write_timeout: %w", err)
		}
	}

	return parsed, nil
}
