// Package filter narrows the methods handed to the converter.
package filter

import (
	"path"
	"strings"

	"google.golang.org/protobuf/types/known/apipb"

	"skyline-samplegen/internal/config"
)

// Apply keeps the methods selected by f. A nil filter keeps everything.
// Patterns are globs over the fully qualified method name, where * also
// matches across dots.
func Apply(methods []*apipb.Method, f *config.MethodFilter) []*apipb.Method {
	if f == nil {
		return methods
	}
	mode := strings.ToLower(f.Mode)
	result := make([]*apipb.Method, 0, len(methods))
	for _, m := range methods {
		matches := anyMatch(f.Methods, m.GetName())
		// Allowlist keeps matches, blocklist keeps the rest.
		if (mode == "allowlist" && matches) || (mode == "blocklist" && !matches) {
			result = append(result, m)
		}
	}
	return result
}

func anyMatch(patterns []string, name string) bool {
	for _, p := range patterns {
		if globMatch(p, name) {
			return true
		}
	}
	return false
}

func globMatch(pattern, name string) bool {
	// path.Match stops * at "/", which never occurs in method names.
	matched, err := path.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}
