package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

const valkeyKeyPrefix = "textlens:translation:"

// ValkeyCache shares translations between textlens instances through a
// Valkey (or Redis) server.
type ValkeyCache struct {
	client valkey.Client
	ttl    time.Duration
}

// NewValkeyCache connects to addr and pings it.
func NewValkeyCache(ctx context.Context, addr, password string, ttl time.Duration) (*ValkeyCache, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Valkey: %w", err)
	}

	slog.Info("[TranslationCache] Connected to Valkey", slog.String("address", addr))
	return &ValkeyCache{client: client, ttl: ttl}, nil
}

func (c *ValkeyCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Do(ctx, c.client.B().Get().Key(valkeyKeyPrefix+key).Build()).ToString()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[TranslationCache] Valkey lookup failed", slog.String("error", err.Error()))
		}
		return "", false
	}
	return value, true
}

func (c *ValkeyCache) Set(ctx context.Context, key, value string) error {
	fullKey := valkeyKeyPrefix + key
	completed := []valkey.Completed{
		c.client.B().Set().Key(fullKey).Value(value).Build(),
	}
	if c.ttl > 0 {
		completed = append(completed,
			c.client.B().Expire().Key(fullKey).Seconds(int64(c.ttl/time.Second)).Build())
	}

	for _, res := range c.client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("failed to store translation in Valkey: %w", err)
		}
	}
	return nil
}

func (c *ValkeyCache) Close() error {
	c.client.Close()
	return nil
}
