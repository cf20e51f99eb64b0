package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for ioclog.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains log sink and defanging settings.
type LoggingConfig struct {
	// Path is the file log lines are appended to.
	Path string `yaml:"path"`

	// Level is the initial threshold: debug, info, warning, error, critical.
	// Default: info
	Level string `yaml:"level"`

	Defang DefangConfig `yaml:"defang"`
}

// DefangConfig selects how resources are neutralized.
type DefangConfig struct {
	// Policy is "full" (rewrite every http, :// and .) or "scheme"
	// (rewrite only the scheme and require "://").
	// Default: full
	Policy string `yaml:"policy"`
}

// MetricsConfig contains Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

var (
	validLevels   = []string{"debug", "info", "warn", "warning", "error", "critical", "fatal"}
	validPolicies = []string{"full", "scheme"}
)

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: IOCLOG_SECTION_KEY
// For example: IOCLOG_LOG_PATH, IOCLOG_METRICS_LISTEN
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadDefaults returns the default configuration with environment variable
// overrides applied, for use when no config file exists.
func LoadDefaults() (*Config, error) {
	cfg := Default()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Path:  "logs/ioclog.log",
			Level: "info",
			Defang: DefangConfig{
				Policy: "full",
			},
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  "127.0.0.1:9464",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: IOCLOG_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Logging
	if v := os.Getenv("IOCLOG_LOG_PATH"); v != "" {
		cfg.Logging.Path = v
	}
	if v := os.Getenv("IOCLOG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("IOCLOG_DEFANG_POLICY"); v != "" {
		cfg.Logging.Defang.Policy = v
	}

	// Metrics
	if v := os.Getenv("IOCLOG_METRICS_LISTEN"); v != "" {
		cfg.Metrics.Listen = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Logging.Path == "" {
		errs = append(errs, "logging.path is required")
	}

	if !oneOf(c.Logging.Level, validLevels) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLevels, ", ")))
	}

	if !oneOf(c.Logging.Defang.Policy, validPolicies) {
		errs = append(errs, fmt.Sprintf("logging.defang.policy must be one of %s", strings.Join(validPolicies, ", ")))
	}

	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.Listen); err != nil {
			errs = append(errs, "metrics.listen must be host:port")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// oneOf reports whether v case-insensitively matches an allowed value.
func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
