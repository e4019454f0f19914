// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// Zone used when coordinates cannot be resolved.
	FallbackTimezone string `yaml:"fallback_timezone"`
	CORS             CORS   `yaml:"cors"`
	Server           Server `yaml:"server"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Server struct {
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

func Default() *Config {
	return &Config{
		FallbackTimezone: "UTC",
		CORS:             CORS{AllowedOrigins: []string{"*"}},
		Server: Server{
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %q: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.FallbackTimezone == "" {
		c.FallbackTimezone = "UTC"
	}
	if _, err := time.LoadLocation(c.FallbackTimezone); err != nil {
		return fmt.Errorf("fallback_timezone %q: %w", c.FallbackTimezone, err)
	}
	return nil
}
