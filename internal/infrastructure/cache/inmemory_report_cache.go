package cache

import (
	"context"
	"sync"
	"time"

	appprofit "github.com/profitlens/backend/internal/application/profit"
	"github.com/profitlens/backend/internal/domain/profit"
)

type reportEntry struct {
	report    *profit.Report
	expiresAt time.Time
}

// InMemoryReportCache implements the report cache with an in-process map.
// Suitable for single-instance deployments and as a fallback when Redis is
// unavailable.
type InMemoryReportCache struct {
	mu        sync.RWMutex
	entries   map[string]reportEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryReportCache creates an in-memory report cache and starts a
// background goroutine that evicts expired entries
func NewInMemoryReportCache() *InMemoryReportCache {
	c := &InMemoryReportCache{
		entries:  make(map[string]reportEntry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

func cacheKey(shop, date string) string {
	return shop + ":" + date
}

// Get returns the cached report for the shop and date, or (nil, nil) when
// absent or expired
func (c *InMemoryReportCache) Get(ctx context.Context, shop, date string) (*profit.Report, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[cacheKey(shop, date)]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.report, nil
}

// Put stores the report for the shop and date with the given TTL
func (c *InMemoryReportCache) Put(ctx context.Context, shop, date string, report *profit.Report, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(shop, date)] = reportEntry{
		report:    report,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryReportCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

func (c *InMemoryReportCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemoryReportCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryReportCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ appprofit.ReportCache = (*InMemoryReportCache)(nil)
