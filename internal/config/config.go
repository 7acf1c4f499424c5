// Package config loads the command-line tool's settings from defaults, an
// optional recurrence.yaml, RECURRENCE_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/katalvlaran/recurrence/subtraction"
)

// Config represents the complete tool configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Demo   DemoConfig   `mapstructure:"demo"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds the sample inputs of the six demonstrations.
type DemoConfig struct {
	LinearN      int   `mapstructure:"linear_n"`
	HanoiDisks   int   `mapstructure:"hanoi_disks"`
	DescentN     int   `mapstructure:"descent_n"`
	DescentSeed  int64 `mapstructure:"descent_seed"` // 0 = fresh random source per run
	MergeInput   []int `mapstructure:"merge_input"`
	SelectInput  []int `mapstructure:"select_input"`
	SelectK      int   `mapstructure:"select_k"`
	MultiplyBits int   `mapstructure:"multiply_bits"`
	MaxDepth     int   `mapstructure:"max_depth"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration of the classic demonstration run.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Demo: DemoConfig{
			LinearN:      5,
			HanoiDisks:   3,
			DescentN:     10,
			DescentSeed:  0,
			MergeInput:   []int{5, 3, 8, 1, 9, 2},
			SelectInput:  []int{10, 4, 5, 8, 6, 11, 26},
			SelectK:      3,
			MultiplyBits: 16,
			MaxDepth:     subtraction.DefaultMaxDepth,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks settings the tool itself depends on. Sample inputs are not
// checked here: an out-of-domain input (e.g. zero Hanoi disks) is reported by
// the demonstration that receives it.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	validOutputs := []string{"text", "yaml", "json"}
	if !slices.Contains(validOutputs, c.Output.Format) {
		return fmt.Errorf("output.format must be one of: text, yaml, json")
	}

	if c.Demo.MaxDepth < 1 {
		return fmt.Errorf("demo.max_depth must be at least 1")
	}

	return nil
}

// LoadConfig loads configuration from file, environment, and flags.
func LoadConfig() (*Config, error) {
	// Register defaults so they are available during unmarshal
	defaults := DefaultConfig()

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	viper.SetDefault("demo.linear_n", defaults.Demo.LinearN)
	viper.SetDefault("demo.hanoi_disks", defaults.Demo.HanoiDisks)
	viper.SetDefault("demo.descent_n", defaults.Demo.DescentN)
	viper.SetDefault("demo.descent_seed", defaults.Demo.DescentSeed)
	viper.SetDefault("demo.merge_input", defaults.Demo.MergeInput)
	viper.SetDefault("demo.select_input", defaults.Demo.SelectInput)
	viper.SetDefault("demo.select_k", defaults.Demo.SelectK)
	viper.SetDefault("demo.multiply_bits", defaults.Demo.MultiplyBits)
	viper.SetDefault("demo.max_depth", defaults.Demo.MaxDepth)

	viper.SetDefault("output.format", defaults.Output.Format)

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// A missing file (search paths or explicit path) means "use defaults"
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
