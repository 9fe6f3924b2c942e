package medicalterms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCache(capacity int, ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)}
	return NewCacheWithClock[string](capacity, ttl, clock.Now), clock
}

func TestCache_SetThenGet(t *testing.T) {
	cache, _ := newTestCache(5, time.Minute)

	cache.Set("Aspirin", "value")

	value, ok := cache.Get("aspirin")
	assert.True(t, ok, "keys should be case-insensitive")
	assert.Equal(t, "value", value)

	_, ok = cache.Get("ASPIRIN")
	assert.True(t, ok)
}

func TestCache_TTL(t *testing.T) {
	cache, clock := newTestCache(5, time.Minute)
	cache.Set("key", "value")

	t.Run("Entry At TTL Is Still Fresh", func(t *testing.T) {
		clock.Advance(time.Minute)
		_, ok := cache.Get("key")
		assert.True(t, ok)
	})

	t.Run("Entry Past TTL Is Absent And Dropped", func(t *testing.T) {
		clock.Advance(time.Nanosecond)
		_, ok := cache.Get("key")
		assert.False(t, ok)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("Expired Slot Is Reusable", func(t *testing.T) {
		cache.Set("key", "fresh")
		value, ok := cache.Get("key")
		assert.True(t, ok)
		assert.Equal(t, "fresh", value)
	})
}

func TestCache_EvictsOldestInserted(t *testing.T) {
	cache, clock := newTestCache(3, time.Hour)
	for _, key := range []string{"a", "b", "c"} {
		cache.Set(key, key)
		clock.Advance(time.Second)
	}

	// Reads do not refresh insertion order.
	_, _ = cache.Get("a")

	expectedEvictions := []struct {
		insert  string
		evicted string
	}{
		{insert: "d", evicted: "a"},
		{insert: "e", evicted: "b"},
		{insert: "f", evicted: "c"},
	}
	for _, step := range expectedEvictions {
		cache.Set(step.insert, step.insert)
		_, ok := cache.Get(step.evicted)
		assert.False(t, ok, "%s should be evicted when %s is inserted", step.evicted, step.insert)
		assert.Equal(t, 3, cache.Len())
	}

	for _, key := range []string{"d", "e", "f"} {
		_, ok := cache.Get(key)
		assert.True(t, ok, "%s should remain", key)
	}
}

func TestCache_OverwriteCountsAsNewInsertion(t *testing.T) {
	cache, _ := newTestCache(2, time.Hour)
	cache.Set("a", "1")
	cache.Set("b", "2")
	cache.Set("A", "3")
	cache.Set("c", "4")

	_, ok := cache.Get("b")
	assert.False(t, ok, "b is now the oldest insertion")

	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", value)
}

func TestCache_PrefixesDoNotCollide(t *testing.T) {
	cache, _ := newTestCache(5, time.Hour)
	cache.Set("medication:asp", "med")
	cache.Set("allergy:asp", "allergy")

	medication, _ := cache.Get("medication:asp")
	allergy, _ := cache.Get("allergy:asp")
	assert.Equal(t, "med", medication)
	assert.Equal(t, "allergy", allergy)
}

func TestCache_Clear(t *testing.T) {
	cache, _ := newTestCache(5, time.Hour)
	cache.Set("a", "1")
	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}
