package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ioclog.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
logging:
  path: "/tmp/ioc.log"
  level: "debug"
  defang:
    policy: "scheme"
metrics:
  enabled: true
  listen: "127.0.0.1:9999"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Path != "/tmp/ioc.log" {
		t.Errorf("Logging.Path = %q, want %q", cfg.Logging.Path, "/tmp/ioc.log")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	if cfg.Logging.Defang.Policy != "scheme" {
		t.Errorf("Logging.Defang.Policy = %q, want %q", cfg.Logging.Defang.Policy, "scheme")
	}

	if !cfg.Metrics.Enabled || cfg.Metrics.Listen != "127.0.0.1:9999" {
		t.Errorf("Metrics = %+v, want enabled on 127.0.0.1:9999", cfg.Metrics)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	configPath := writeConfig(t, `
logging:
  path: "/tmp/ioc.log"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}

	if cfg.Logging.Defang.Policy != "full" {
		t.Errorf("Logging.Defang.Policy = %q, want default %q", cfg.Logging.Defang.Policy, "full")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/ioclog.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid: [yaml: content")

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	configPath := writeConfig(t, `
logging:
  path: ""
`)

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty logging.path, got nil")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IOCLOG_LOG_LEVEL", "warning")

	cfg, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}

	if cfg.Logging.Level != "warning" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warning")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Logging: LoggingConfig{
				Path:   "/var/log/ioclog.log",
				Level:  "info",
				Defang: DefangConfig{Policy: "full"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "level is case insensitive",
			mutate:  func(c *Config) { c.Logging.Level = "CRITICAL" },
			wantErr: false,
		},
		{
			name:    "missing path",
			mutate:  func(c *Config) { c.Logging.Path = "" },
			wantErr: true,
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown policy",
			mutate:  func(c *Config) { c.Logging.Defang.Policy = "aggressive" },
			wantErr: true,
		},
		{
			name: "metrics enabled with bad listen",
			mutate: func(c *Config) {
				c.Metrics = MetricsConfig{Enabled: true, Listen: "9464"}
			},
			wantErr: true,
		},
		{
			name: "metrics disabled ignores listen",
			mutate: func(c *Config) {
				c.Metrics = MetricsConfig{Enabled: false, Listen: ""}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Default()

	t.Setenv("IOCLOG_LOG_PATH", "/custom/ioc.log")
	t.Setenv("IOCLOG_LOG_LEVEL", "error")
	t.Setenv("IOCLOG_DEFANG_POLICY", "scheme")
	t.Setenv("IOCLOG_METRICS_LISTEN", "0.0.0.0:9100")

	applyEnvOverrides(cfg)

	if cfg.Logging.Path != "/custom/ioc.log" {
		t.Errorf("Logging.Path = %q, want %q", cfg.Logging.Path, "/custom/ioc.log")
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "error")
	}

	if cfg.Logging.Defang.Policy != "scheme" {
		t.Errorf("Logging.Defang.Policy = %q, want %q", cfg.Logging.Defang.Policy, "scheme")
	}

	if cfg.Metrics.Listen != "0.0.0.0:9100" {
		t.Errorf("Metrics.Listen = %q, want %q", cfg.Metrics.Listen, "0.0.0.0:9100")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Path == "" {
		t.Error("Default should have non-empty Logging.Path")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Default Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if cfg.Metrics.Enabled {
		t.Error("Default should leave metrics disabled")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default should validate: %v", err)
	}
}
