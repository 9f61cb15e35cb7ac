// Package config provides Viper-based configuration for the advisor.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pickomino/meta"
)

// ServerConfig holds advice server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ExperimentConfig holds mode-comparison experiment settings.
type ExperimentConfig struct {
	Games int    `mapstructure:"games"`
	Turns int    `mapstructure:"turns"`
	Seed  uint64 `mapstructure:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.Experiment.Games < 1 {
		errs = append(errs, fmt.Sprintf("experiment.games must be >= 1, got %d", c.Experiment.Games))
	}
	if c.Experiment.Turns < 1 {
		errs = append(errs, fmt.Sprintf("experiment.turns must be >= 1, got %d", c.Experiment.Turns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from an optional file path, applies environment
// variable overrides, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PICKOMINO_ prefix
	v.SetEnvPrefix("PICKOMINO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", meta.DefaultPort)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("experiment.games", meta.DefaultGames)
	v.SetDefault("experiment.turns", meta.DefaultTurns)
	v.SetDefault("experiment.seed", meta.DefaultSeed)
}
