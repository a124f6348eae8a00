package config

import (
	"fmt"
	"path"
	"strings"

	"skyline-samplegen/internal/logging"
	"skyline-samplegen/internal/naming"
	"skyline-samplegen/internal/sampleconfig"
)

type Config struct {
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	Naming    NamingConfig    `json:"naming,omitempty" yaml:"naming,omitempty"`
	Filter    *MethodFilter   `json:"filter,omitempty" yaml:"filter,omitempty"`
	Output    OutputConfig    `json:"output,omitempty" yaml:"output,omitempty"`
	Overrides OverrideConfig  `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Logging   LoggingConfig   `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// DiscoveryConfig says where the discovery document comes from. Exactly one
// of File and URL is set.
type DiscoveryConfig struct {
	File           string `json:"file,omitempty" yaml:"file,omitempty"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

type NamingConfig struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	// Script is a TypeScript or JavaScript module overriding the language's names.
	Script string `json:"script,omitempty" yaml:"script,omitempty"`
}

// MethodFilter keeps (allowlist) or drops (blocklist) methods whose id matches
// any of the glob patterns.
type MethodFilter struct {
	Mode    string   `json:"mode" yaml:"mode"`
	Methods []string `json:"methods" yaml:"methods"`
}

type OutputConfig struct {
	// File is the destination; empty or "-" writes to stdout.
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	Validate *bool  `json:"validate,omitempty" yaml:"validate,omitempty"`
	// Store is an optional SQLite database that keeps every generated config.
	Store string `json:"store,omitempty" yaml:"store,omitempty"`
}

// OverrideConfig replaces API identity fields the discovery document gets
// wrong or leaves out.
type OverrideConfig struct {
	AuthType            string `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
	AuthInstructionsURL string `json:"auth_instructions_url,omitempty" yaml:"auth_instructions_url,omitempty"`
}

type LoggingConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
}

func (c *Config) ApplyDefaults() {
	if c.Discovery.TimeoutSeconds == 0 {
		c.Discovery.TimeoutSeconds = 10
	}
	if c.Naming.Language == "" {
		c.Naming.Language = "default"
	}
	if c.Output.Format == "" {
		c.Output.Format = sampleconfig.FormatJSON
	}
	if c.Output.Validate == nil {
		validate := true
		c.Output.Validate = &validate
	}
	if c.Logging.Format == "" {
		c.Logging.Format = logging.FormatAuto
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ValidateOutput reports whether encoded configs are checked against the
// document schema before they are written.
func (c *Config) ValidateOutput() bool {
	if c.Output.Validate == nil {
		return true
	}
	return *c.Output.Validate
}

func (c *Config) Validate() error {
	if c.Discovery.File == "" && c.Discovery.URL == "" {
		return fmt.Errorf("discovery: either file or url is required")
	}
	if c.Discovery.File != "" && c.Discovery.URL != "" {
		return fmt.Errorf("discovery: file and url are mutually exclusive")
	}
	if c.Discovery.TimeoutSeconds < 0 {
		return fmt.Errorf("discovery.timeout_seconds must be >= 0")
	}
	if _, err := naming.ForLanguage(c.Naming.Language); err != nil {
		return fmt.Errorf("naming.language: %w", err)
	}
	if c.Filter != nil {
		if err := c.Filter.Validate(); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}
	switch strings.ToLower(c.Output.Format) {
	case sampleconfig.FormatJSON, sampleconfig.FormatYAML, "yml":
	default:
		return fmt.Errorf("output.format must be 'json' or 'yaml', got %q", c.Output.Format)
	}
	if c.Overrides.AuthType != "" {
		if _, err := sampleconfig.ParseAuthType(c.Overrides.AuthType); err != nil {
			return fmt.Errorf("overrides.auth_type: %w", err)
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatAuto, logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be 'auto', 'text' or 'json', got %q", c.Logging.Format)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (f *MethodFilter) Validate() error {
	mode := strings.ToLower(f.Mode)
	if mode != "allowlist" && mode != "blocklist" {
		return fmt.Errorf("mode must be 'allowlist' or 'blocklist', got %q", f.Mode)
	}
	if len(f.Methods) == 0 {
		return fmt.Errorf("methods cannot be empty")
	}
	for i, pattern := range f.Methods {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("methods[%d]: empty pattern", i)
		}
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("methods[%d]: invalid glob pattern %q: %w", i, pattern, err)
		}
	}
	return nil
}
