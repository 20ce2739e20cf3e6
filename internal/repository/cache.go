package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/dgraph-io/ristretto"
	"github.com/redis/go-redis/v9"
)

// QuoteCache holds recently fetched quotes for a short time.
// Get reports a miss with ok == false; only transport failures are errors.
type QuoteCache interface {
	Get(ctx context.Context, ticker string) (q models.Quote, ok bool, err error)
	Set(ctx context.Context, q models.Quote) error
}

func cacheKey(ticker string) string {
	return "quote:" + strings.ToUpper(ticker)
}

// MemoryQuoteCache is an in-process quote cache backed by ristretto
type MemoryQuoteCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewMemoryQuoteCache creates an in-process cache holding quotes for ttl
func NewMemoryQuoteCache(ttl time.Duration) (*MemoryQuoteCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return &MemoryQuoteCache{cache: cache, ttl: ttl}, nil
}

// Get returns a cached quote
func (c *MemoryQuoteCache) Get(_ context.Context, ticker string) (models.Quote, bool, error) {
	v, ok := c.cache.Get(cacheKey(ticker))
	if !ok {
		return models.Quote{}, false, nil
	}
	q, ok := v.(models.Quote)
	return q, ok, nil
}

// Set caches a quote. Ristretto applies sets asynchronously, so the write is
// flushed before returning to make it visible to the next Get.
func (c *MemoryQuoteCache) Set(_ context.Context, q models.Quote) error {
	c.cache.SetWithTTL(cacheKey(q.Ticker), q, 1, c.ttl)
	c.cache.Wait()
	return nil
}

// Close stops the cache's background goroutines
func (c *MemoryQuoteCache) Close() {
	c.cache.Close()
}

// RedisQuoteCache is a quote cache shared between instances through redis
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisQuoteCache wraps a redis client
func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl}
}

// Get returns a cached quote
func (c *RedisQuoteCache) Get(ctx context.Context, ticker string) (models.Quote, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(ticker)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Quote{}, false, nil
	}
	if err != nil {
		return models.Quote{}, false, fmt.Errorf("failed to read cached quote: %w", err)
	}

	var q models.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return models.Quote{}, false, fmt.Errorf("failed to decode cached quote: %w", err)
	}
	return q, true, nil
}

// Set caches a quote
func (c *RedisQuoteCache) Set(ctx context.Context, q models.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(q.Ticker), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}
	return nil
}
