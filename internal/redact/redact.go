package redact

import (
	"net/url"
	"strings"
)

const mask = "[REDACTED]"

// sensitiveParams are query parameters that carry credentials in Google API
// URLs.
var sensitiveParams = []string{"key", "access_token", "oauth_token"}

// URL masks credentials in raw: the userinfo password and any sensitive query
// parameter. Strings that do not parse as URLs come back unchanged.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), mask)
		}
	}
	if u.RawQuery != "" {
		q := u.Query()
		changed := false
		for name := range q {
			if isSensitive(name) {
				q[name] = []string{mask}
				changed = true
			}
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}
	return u.String()
}

func isSensitive(name string) bool {
	for _, p := range sensitiveParams {
		if strings.EqualFold(name, p) {
			return true
		}
	}
	return false
}
