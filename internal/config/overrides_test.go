package config

import "testing"

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SAMPLEGEN_DISCOVERY", "https://maps.example.com/$discovery/rest")
	t.Setenv("SAMPLEGEN_LANGUAGE", "python")
	t.Setenv("SAMPLEGEN_LOG_LEVEL", "debug")

	cfg, err := Parse([]byte(`
discovery:
  file: ./maps.json
naming:
  language: java
output:
  format: yaml
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Discovery.File != "" || cfg.Discovery.URL != "https://maps.example.com/$discovery/rest" {
		t.Fatalf("discovery not overridden: %+v", cfg.Discovery)
	}
	if cfg.Naming.Language != "python" {
		t.Fatalf("language = %q", cfg.Naming.Language)
	}
	if cfg.Output.Format != "yaml" {
		t.Fatalf("unset variable should keep file value, got %q", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
}

func TestSetDiscovery(t *testing.T) {
	var cfg Config
	cfg.SetDiscovery("http://localhost/rest")
	if cfg.Discovery.URL != "http://localhost/rest" || cfg.Discovery.File != "" {
		t.Fatalf("unexpected discovery: %+v", cfg.Discovery)
	}
	cfg.SetDiscovery("maps.json")
	if cfg.Discovery.File != "maps.json" || cfg.Discovery.URL != "" {
		t.Fatalf("unexpected discovery: %+v", cfg.Discovery)
	}
}
