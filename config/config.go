package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Memory    MemoryConfig    `yaml:"memory"`
	Watch     WatchConfig     `yaml:"watch"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type MemoryConfig struct {
	MaxRAMMB       float64 `yaml:"max_ram_mb"`
	TargetFraction float64 `yaml:"target_fraction"`
}

type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
	Samples  int           `yaml:"samples"`
}

type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Memory: MemoryConfig{
			MaxRAMMB:       4096,
			TargetFraction: 0.1,
		},
		Watch: WatchConfig{
			Interval: 5 * time.Second,
			Samples:  0, // run until interrupted
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Path:    "chunkflow-samples.log",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Memory.MaxRAMMB <= 0 {
		return nil, fmt.Errorf("error validating config: memory.max_ram_mb must be positive")
	}
	if config.Memory.TargetFraction <= 0 || config.Memory.TargetFraction > 1 {
		return nil, fmt.Errorf("error validating config: memory.target_fraction must be in (0, 1]")
	}
	if config.Watch.Interval <= 0 {
		return nil, fmt.Errorf("error validating config: watch.interval must be positive")
	}

	return config, nil
}
