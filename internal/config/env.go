package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// ExpandEnvStrict replaces ${VAR} references with their values. Every unset
// variable is reported in a single error.
func ExpandEnvStrict(input string) (string, error) {
	var missing []string
	out := envPattern.ReplaceAllStringFunc(input, func(ref string) string {
		name := envPattern.FindStringSubmatch(ref)[1]
		val, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("missing env var %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// ExpandEnv expands references in every path and URL setting.
func (c *Config) ExpandEnv() error {
	targets := []struct {
		name string
		ptr  *string
	}{
		{"discovery.file", &c.Discovery.File},
		{"discovery.url", &c.Discovery.URL},
		{"naming.script", &c.Naming.Script},
		{"output.file", &c.Output.File},
		{"output.store", &c.Output.Store},
		{"overrides.auth_instructions_url", &c.Overrides.AuthInstructionsURL},
	}
	for _, t := range targets {
		expanded, err := ExpandEnvStrict(*t.ptr)
		if err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
		*t.ptr = expanded
	}
	return nil
}
