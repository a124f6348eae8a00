package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes the environment variables read by ApplyEnvOverrides.
const EnvPrefix = "samplegen"

// envOverrides are the settings that can be given as SAMPLEGEN_* variables.
// They sit between the config file and command-line flags.
type envOverrides struct {
	Discovery    string `envconfig:"DISCOVERY"`
	Language     string `envconfig:"LANGUAGE"`
	NamingScript string `envconfig:"NAMING_SCRIPT"`
	Out          string `envconfig:"OUT"`
	Format       string `envconfig:"FORMAT"`
	Store        string `envconfig:"STORE"`
	LogFormat    string `envconfig:"LOG_FORMAT"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

// ApplyEnvOverrides overlays SAMPLEGEN_* environment variables on c.
func (c *Config) ApplyEnvOverrides() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}
	if env.Discovery != "" {
		c.SetDiscovery(env.Discovery)
	}
	setIfNotEmpty(&c.Naming.Language, env.Language)
	setIfNotEmpty(&c.Naming.Script, env.NamingScript)
	setIfNotEmpty(&c.Output.File, env.Out)
	setIfNotEmpty(&c.Output.Format, env.Format)
	setIfNotEmpty(&c.Output.Store, env.Store)
	setIfNotEmpty(&c.Logging.Format, env.LogFormat)
	setIfNotEmpty(&c.Logging.Level, env.LogLevel)
	return nil
}

// SetDiscovery points c at src, which is either a file path or an http(s) URL.
func (c *Config) SetDiscovery(src string) {
	c.Discovery.File, c.Discovery.URL = "", ""
	if IsURL(src) {
		c.Discovery.URL = src
	} else {
		c.Discovery.File = src
	}
}

func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
