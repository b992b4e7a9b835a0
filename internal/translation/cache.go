package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Cache stores finished translations keyed by CacheKey.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// CacheKey derives a fixed-size key from the language pair and text.
func CacheKey(source, target, text string) string {
	sum := sha256.Sum256([]byte(source + "\x00" + target + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// MemoryCache keeps translations in memory for the life of the process.
type MemoryCache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		translations: make(map[string]string),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[key]
	return translation, ok
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[key] = value
	return nil
}

// Len returns the number of cached translations.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}

func (c *MemoryCache) Close() error {
	return nil
}

// Caches lists the accepted values of CacheConfig.Kind.
var Caches = []string{"none", "memory", "sqlite", "valkey"}

// CacheConfig selects and configures a cache.
type CacheConfig struct {
	Kind           string
	Path           string
	TTL            time.Duration
	ValkeyAddress  string
	ValkeyPassword string
}

// OpenCache builds the cache named by cfg.Kind. It returns nil, nil for
// "none".
func OpenCache(ctx context.Context, cfg CacheConfig) (Cache, error) {
	switch cfg.Kind {
	case "", "none":
		return nil, nil
	case "memory":
		return NewMemoryCache(), nil
	case "sqlite":
		c, err := OpenSQLiteCache(cfg.Path, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "valkey":
		if cfg.ValkeyAddress == "" {
			return nil, fmt.Errorf("valkey cache needs an address")
		}
		c, err := NewValkeyCache(ctx, cfg.ValkeyAddress, cfg.ValkeyPassword, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown translation cache %q (want one of %v)", cfg.Kind, Caches)
	}
}
