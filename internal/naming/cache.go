package naming

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedStrategy memoizes the names produced by a slower strategy, such as a
// ScriptStrategy that calls into JavaScript for every lookup.
type CachedStrategy struct {
	next  Strategy
	cache *lru.Cache[string, string]
}

// Cached wraps next with a cache holding up to size names.
func Cached(next Strategy, size int) (*CachedStrategy, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("naming cache: %w", err)
	}
	return &CachedStrategy{next: next, cache: cache}, nil
}

func (c *CachedStrategy) lookup(key string, compute func() string) string {
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := compute()
	c.cache.Add(key, v)
	return v
}

func (c *CachedStrategy) APITypeName(apiName string) string {
	return c.lookup("api\x00"+apiName, func() string { return c.next.APITypeName(apiName) })
}

func (c *CachedStrategy) PackagePrefix(apiName, apiVersion string) string {
	return c.lookup("pkg\x00"+apiName+"\x00"+apiVersion, func() string {
		return c.next.PackagePrefix(apiName, apiVersion)
	})
}

func (c *CachedStrategy) RequestTypeName(nameComponents []string) string {
	return c.lookup("req\x00"+strings.Join(nameComponents, "\x00"), func() string {
		return c.next.RequestTypeName(nameComponents)
	})
}

func (c *CachedStrategy) MessageTypeName(typeURL string) string {
	return c.lookup("msg\x00"+typeURL, func() string { return c.next.MessageTypeName(typeURL) })
}

func (c *CachedStrategy) Subpackage(isRequest bool) string {
	return c.lookup("sub\x00"+strconv.FormatBool(isRequest), func() string {
		return c.next.Subpackage(isRequest)
	})
}
