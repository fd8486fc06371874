package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appprofit "github.com/profitlens/backend/internal/application/profit"
	"github.com/profitlens/backend/internal/domain/profit"
)

const reportKeyPrefix = "profit:report:"

// RedisReportCache implements the report cache on Redis. Reports are stored
// as JSON under profit:report:<shop>:<date> with a caller-supplied TTL.
// Suitable for distributed deployments where multiple instances share
// cached reports.
type RedisReportCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisReportCache creates a Redis-backed report cache and verifies the
// connection with a ping
func NewRedisReportCache(cfg RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{
		client:    client,
		keyPrefix: reportKeyPrefix,
	}, nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, keyPrefix string) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = reportKeyPrefix
	}
	return &RedisReportCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *RedisReportCache) key(shop, date string) string {
	return c.keyPrefix + shop + ":" + date
}

// Get returns the cached report for the shop and date, or (nil, nil) on a
// cache miss
func (c *RedisReportCache) Get(ctx context.Context, shop, date string) (*profit.Report, error) {
	data, err := c.client.Get(ctx, c.key(shop, date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached report: %w", err)
	}

	var report profit.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return &report, nil
}

// Put stores the report for the shop and date with the given TTL
func (c *RedisReportCache) Put(ctx context.Context, shop, date string, report *profit.Report, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, c.key(shop, date), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

var _ appprofit.ReportCache = (*RedisReportCache)(nil)
