package drill

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pokertrainer/trainer"
)

// DefaultCacheCapacity bounds the scenario cache when no capacity is
// configured.
const DefaultCacheCapacity = 1000

// DefaultCacheTTL is how long an unanswered scenario stays retrievable.
const DefaultCacheTTL = 30 * time.Minute

type cacheEntry struct {
	scenario  trainer.TrainingScenario
	expiresAt time.Time
}

// Cache holds generated scenarios between the scenario and answer calls.
// It is capacity-bounded and entries expire after a TTL; an arbitrary entry
// is evicted when the cache is full.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	capacity int
	ttl      time.Duration
	clock    quartz.Clock
}

// NewCache creates a cache with the given capacity and TTL. Zero values
// fall back to the defaults. The clock is injected so tests can drive time.
func NewCache(capacity int, ttl time.Duration, clock quartz.Clock) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Cache{
		entries:  make(map[string]cacheEntry),
		capacity: capacity,
		ttl:      ttl,
		clock:    clock,
	}
}

// Put stores a scenario under its scenario id, evicting an arbitrary entry
// if the cache is at capacity.
func (c *Cache) Put(s trainer.TrainingScenario) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[s.ScenarioID]; !ok && len(c.entries) >= c.capacity {
		for id := range c.entries {
			delete(c.entries, id)
			break
		}
	}
	c.entries[s.ScenarioID] = cacheEntry{
		scenario:  s,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}

// Get returns the scenario stored under id. Expired entries are treated as
// missing and removed.
func (c *Cache) Get(id string) (trainer.TrainingScenario, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return trainer.TrainingScenario{}, false
	}
	if !c.clock.Now().Before(entry.expiresAt) {
		delete(c.entries, id)
		return trainer.TrainingScenario{}, false
	}
	return entry.scenario, true
}

// Len returns the number of entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Janitor sweeps expired entries every interval until ctx is cancelled.
// Run it in its own goroutine.
func (c *Cache) Janitor(ctx context.Context, interval time.Duration) {
	ticker := c.clock.TickerFunc(ctx, interval, func() error {
		c.sweep()
		return nil
	}, "cache janitor")
	_ = ticker.Wait()
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for id, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, id)
		}
	}
}
