package facets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolverCache_ExpiresEntriesLazily(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := newResolverCache(2 * time.Hour)
	cache.nowFn = func() time.Time { return now }

	cache.put("key", "value")

	got, ok := cache.get("key")
	require.True(t, ok)
	require.Equal(t, "value", got)

	// Still live exactly at the TTL boundary.
	now = now.Add(2 * time.Hour)
	_, ok = cache.get("key")
	require.True(t, ok)

	// One tick past the boundary the entry ages out and the read deletes it.
	now = now.Add(time.Nanosecond)
	_, ok = cache.get("key")
	require.False(t, ok)

	// Rolling the clock back does not revive a deleted entry.
	now = now.Add(-time.Hour)
	_, ok = cache.get("key")
	require.False(t, ok)
}

func TestResolverCache_PutRefreshesTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := newResolverCache(time.Hour)
	cache.nowFn = func() time.Time { return now }

	cache.put("key", "old")

	now = now.Add(30 * time.Minute)
	cache.put("key", "new")

	// 31 minutes after the first put, 1 minute after the second.
	now = now.Add(31 * time.Minute)
	got, ok := cache.get("key")
	require.True(t, ok)
	require.Equal(t, "new", got)
}

func TestResolverCache_ClearDropsEverything(t *testing.T) {
	cache := newResolverCache(time.Hour)
	cache.put("a", 1)
	cache.put("b", 2)

	cache.clear()

	_, ok := cache.get("a")
	require.False(t, ok)
	_, ok = cache.get("b")
	require.False(t, ok)
}
