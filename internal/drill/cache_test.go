package drill

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/trainer"
)

func testScenario(seed uint64) trainer.TrainingScenario {
	req := trainer.NewRequest(trainer.PreflopDecision)
	req.Seed = &seed
	return trainer.GenerateTraining(req)
}

func TestCachePutGet(t *testing.T) {
	t.Parallel()

	cache := NewCache(10, time.Minute, quartz.NewMock(t))

	s := testScenario(1)
	cache.Put(s)

	got, ok := cache.Get(s.ScenarioID)
	require.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = cache.Get("PF-00000000")
	assert.False(t, ok)
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	mock := quartz.NewMock(t)
	cache := NewCache(10, time.Minute, mock)

	s := testScenario(2)
	cache.Put(s)

	mock.Advance(59 * time.Second)
	_, ok := cache.Get(s.ScenarioID)
	require.True(t, ok, "entry expired early")

	mock.Advance(1 * time.Second)
	_, ok = cache.Get(s.ScenarioID)
	require.False(t, ok, "entry should expire at the TTL")
}

func TestCacheCapacityEviction(t *testing.T) {
	t.Parallel()

	cache := NewCache(3, time.Minute, quartz.NewMock(t))

	for seed := uint64(0); seed < 5; seed++ {
		cache.Put(testScenario(seed))
	}
	assert.Equal(t, 3, cache.Len())
}

func TestCachePutExistingDoesNotEvict(t *testing.T) {
	t.Parallel()

	cache := NewCache(2, time.Minute, quartz.NewMock(t))

	a, b := testScenario(10), testScenario(11)
	cache.Put(a)
	cache.Put(b)
	cache.Put(a) // refresh, not a new entry

	require.Equal(t, 2, cache.Len())
	_, ok := cache.Get(a.ScenarioID)
	assert.True(t, ok)
	_, ok = cache.Get(b.ScenarioID)
	assert.True(t, ok)
}

func TestCacheJanitorSweep(t *testing.T) {
	t.Parallel()

	mock := quartz.NewMock(t)
	cache := NewCache(100, time.Minute, mock)

	trap := mock.Trap().TickerFunc("cache janitor")
	defer trap.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.Janitor(ctx, 30*time.Second)
	}()
	trap.MustWait(ctx).MustRelease(ctx)

	for seed := uint64(0); seed < 4; seed++ {
		cache.Put(testScenario(seed))
	}
	require.Equal(t, 4, cache.Len())

	// Two ticks land past the TTL, so the sweep removes every entry
	mock.Advance(30 * time.Second).MustWait(ctx)
	mock.Advance(30 * time.Second).MustWait(ctx)
	mock.Advance(30 * time.Second).MustWait(ctx)
	assert.Equal(t, 0, cache.Len())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop on cancel")
	}
}

func TestCacheDefaults(t *testing.T) {
	t.Parallel()

	cache := NewCache(0, 0, nil)
	require.NotNil(t, cache)

	// Defaults keep the cache usable
	for i := 0; i < 5; i++ {
		cache.Put(testScenario(uint64(i + 100)))
	}
	assert.Equal(t, 5, cache.Len())
}
