package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("discovery:\n  file: ./maps.json\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Discovery.TimeoutSeconds != 10 {
		t.Errorf("expected default timeout 10, got %d", cfg.Discovery.TimeoutSeconds)
	}
	if cfg.Naming.Language != "default" {
		t.Errorf("expected default language, got %q", cfg.Naming.Language)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected json output, got %q", cfg.Output.Format)
	}
	if !cfg.ValidateOutput() {
		t.Errorf("expected output validation on by default")
	}
	if cfg.Logging.Format != "auto" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromBytesRejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromBytes([]byte("discovery:\n  file: a.json\noutptu:\n  format: yaml\n"))
	if err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samplegen.yaml")
	data := `
discovery:
  url: https://www.googleapis.com/discovery/v1/apis/maps/v1/rest
naming:
  language: java
filter:
  mode: allowlist
  methods: ["maps.directions.*"]
output:
  format: yaml
  validate: false
overrides:
  auth_type: API_KEY
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Naming.Language != "java" || cfg.Output.Format != "yaml" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ValidateOutput() {
		t.Fatalf("expected output validation disabled")
	}
	if cfg.Filter == nil || cfg.Filter.Methods[0] != "maps.directions.*" {
		t.Fatalf("unexpected filter: %+v", cfg.Filter)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{
			name:   "no discovery source",
			cfg:    Config{},
			errMsg: "either file or url is required",
		},
		{
			name:   "both discovery sources",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json", URL: "https://example.com"}},
			errMsg: "mutually exclusive",
		},
		{
			name:   "unknown language",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Naming: NamingConfig{Language: "cobol"}},
			errMsg: "unknown language",
		},
		{
			name:   "unknown format",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Output: OutputConfig{Format: "toml"}},
			errMsg: "output.format",
		},
		{
			name:   "unknown auth override",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Overrides: OverrideConfig{AuthType: "PASSWORD"}},
			errMsg: "overrides.auth_type",
		},
		{
			name:   "bad filter mode",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Filter: &MethodFilter{Mode: "only", Methods: []string{"*"}}},
			errMsg: "allowlist",
		},
		{
			name:   "empty filter",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Filter: &MethodFilter{Mode: "blocklist"}},
			errMsg: "methods cannot be empty",
		},
		{
			name:   "malformed filter glob",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Filter: &MethodFilter{Mode: "blocklist", Methods: []string{"maps.*", "maps.["}}},
			errMsg: "methods[1]: invalid glob pattern",
		},
		{
			name:   "bad log level",
			cfg:    Config{Discovery: DiscoveryConfig{File: "a.json"}, Logging: LoggingConfig{Level: "chatty"}},
			errMsg: "logging.level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ApplyDefaults()
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}
