// Package config loads the application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrBadTrainFraction = errors.New("benchmark.train_fraction must be between 0 and 1 exclusive")
	ErrBadHorizon       = errors.New("benchmark.default_horizon must be at least 1")
	ErrNoDataSource     = errors.New("either data.csv_path or data.demo must be set")
)

// Config represents the complete application configuration.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DataConfig holds the input series source. When Demo is set and no CSV path
// is given, a synthetic visitor series is generated instead.
type DataConfig struct {
	CSVPath    string `mapstructure:"csv_path"`
	Demo       bool   `mapstructure:"demo"`
	DemoMonths int    `mapstructure:"demo_months"`
}

// BenchmarkConfig holds the evaluation pipeline settings.
type BenchmarkConfig struct {
	TrainFraction  float64 `mapstructure:"train_fraction"`
	DefaultHorizon int     `mapstructure:"default_horizon"`
}

// ServerConfig holds the dashboard server settings.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the file at path, falling back to defaults
// when path is empty. Environment variables prefixed with VISITORCAST_
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("VISITORCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config, %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for usable values.
func (c *Config) Validate() error {
	if c.Benchmark.TrainFraction <= 0 || c.Benchmark.TrainFraction >= 1 {
		return fmt.Errorf("got %f, %w", c.Benchmark.TrainFraction, ErrBadTrainFraction)
	}
	if c.Benchmark.DefaultHorizon < 1 {
		return fmt.Errorf("got %d, %w", c.Benchmark.DefaultHorizon, ErrBadHorizon)
	}
	if c.Data.CSVPath == "" && !c.Data.Demo {
		return ErrNoDataSource
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.csv_path", "")
	v.SetDefault("data.demo", false)
	v.SetDefault("data.demo_months", 120)

	v.SetDefault("benchmark.train_fraction", 0.7)
	v.SetDefault("benchmark.default_horizon", 12)

	v.SetDefault("server.listen_addr", ":8600")

	v.SetDefault("logging.level", "info")
}
