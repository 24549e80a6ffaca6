// Package config loads settings for the calc command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the calc command's settings.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Workers is the number of expressions evaluated in parallel.
	Workers int `yaml:"workers"`
	// Lines makes each input line a separate expression.
	Lines bool `yaml:"lines"`
	// Echo prints the postfix form of each expression with its result.
	Echo bool `yaml:"echo"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the command's logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:  "%g",
		Workers: runtime.GOMAXPROCS(0),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default location of the config file, or the empty
// string if there is no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file gives the
// defaults. Environment overrides are applied after the file. The result is
// not validated, so that callers can apply their own overrides first.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Use defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CALC_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("CALC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CALC_WORKERS %q: %w", v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv("CALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, not %d", c.Workers)
	}
	// fmt reports bad verbs, missing operands and extra operands in its
	// output, all starting with %!.
	if s := fmt.Sprintf(c.Format, 1.5); strings.Contains(s, "%!") {
		return fmt.Errorf("format %q must contain exactly one float verb, but formats 1.5 as %q", c.Format, s)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}
