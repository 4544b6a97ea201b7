// Package cache provides the TTL-bounded response cache used by the
// ContextTool service. Keys canonicalize the request parameters so that two
// requests differing only in map iteration order share an entry.
package cache

import (
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a concurrency-safe TTL cache. Values past their TTL are never
// returned; expired entries are collected by a background janitor.
type Cache struct {
	entries *gocache.Cache
}

// New creates a Cache whose entries live for defaultTTL. The janitor sweeps
// expired entries at twice the TTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		entries: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Key builds the canonical cache key for a context lookup: the context key
// followed by the parameters in sorted order.
func Key(contextKey string, parameters map[string]string) string {
	if len(parameters) == 0 {
		return contextKey
	}
	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(contextKey)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(parameters[k])
	}
	return b.String()
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.entries.Get(key)
}

// Set stores value under key for ttl. A non-positive ttl falls back to the
// cache's default.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.entries.Set(key, value, ttl)
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.entries.Flush()
}
