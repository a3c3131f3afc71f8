package lru_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/AndrewDonelson/memoize/internal/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(n int) *lru.Cache {
	return lru.New(lru.Options{MaxEntries: n})
}

func TestCache_SetGet(t *testing.T) {
	c := newCache(10)
	c.Set("k", "v")

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestCache_Miss(t *testing.T) {
	c := newCache(10)
	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)

	info := c.Info()
	assert.Equal(t, int64(0), info.Hits)
	assert.Equal(t, int64(1), info.Misses)
}

// A stored nil is a hit, distinguishable from a miss.
func TestCache_NilValueIsHit(t *testing.T) {
	c := newCache(10)
	c.Set("k", nil)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, int64(1), c.Info().Hits)
}

func TestCache_Overwrite(t *testing.T) {
	c := newCache(10)
	c.Set("k", 1)
	c.Set("k", 2)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_CapacityNeverExceeded(t *testing.T) {
	const n = 8
	c := newCache(n)
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		assert.LessOrEqual(t, c.Len(), n)
	}
	assert.Equal(t, n, c.Len())
}

// Filling the cache, touching the oldest key, then inserting one more must
// evict the second-oldest key, not the touched one.
func TestCache_RecencyPromotion(t *testing.T) {
	const n = 4
	c := newCache(n)
	for i := 1; i <= n; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	_, ok := c.Get("k1")
	require.True(t, ok)

	c.Set("k5", 5)

	_, ok = c.Get("k2")
	assert.False(t, ok, "k2 was least recently used and must be evicted")
	_, ok = c.Get("k1")
	assert.True(t, ok, "k1 was promoted by the Get and must survive")
}

func TestCache_HitMissAccounting(t *testing.T) {
	c := newCache(10)
	c.Set("a", "x")

	_, _ = c.Get("a") // hit
	_, _ = c.Get("b") // miss
	_, _ = c.Get("a") // hit

	info := c.Info()
	assert.Equal(t, int64(2), info.Hits)
	assert.Equal(t, int64(1), info.Misses)
}

func TestCache_DeleteCountersUntouched(t *testing.T) {
	c := newCache(10)
	c.Set("a", 1)
	_, _ = c.Get("a")

	c.Delete("a")
	c.Delete("ghost") // no-op, not an error

	info := c.Info()
	assert.Equal(t, int64(1), info.Hits)
	assert.Equal(t, int64(0), info.Misses)
	assert.Equal(t, 0, info.Len)
}

func TestCache_DeleteThenReinsert(t *testing.T) {
	c := newCache(10)
	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Clear(t *testing.T) {
	c := newCache(5)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	_, _ = c.Get("k0")
	_, _ = c.Get("nope")

	c.Clear()

	info := c.Info()
	assert.Equal(t, lru.Stats{Hits: 0, Misses: 0, MaxEntries: 5, Len: 0}, info)

	_, ok := c.Get("k0")
	assert.False(t, ok)

	// Clearing an already empty cache is fine.
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

// The worked example: maxsize 2, one promotion, one eviction.
func TestCache_Scenario(t *testing.T) {
	c := newCache(2)
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("c", 3) // evicts b, the least recently used

	_, ok = c.Get("b")
	assert.False(t, ok)

	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, lru.Stats{Hits: 2, Misses: 1, MaxEntries: 2, Len: 2}, c.Info())
}

func TestCache_Unbounded(t *testing.T) {
	c := lru.New(lru.Options{MaxEntries: lru.Unbounded})
	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 1000, c.Len())
}

func TestCache_NoStore(t *testing.T) {
	var evicted []string
	c := lru.New(lru.Options{
		MaxEntries: lru.NoStore,
		OnEvict:    func(key string, _ any) { evicted = append(evicted, key) },
	})
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"a", "b"}, evicted)
}

func TestCache_OnEvictOrder(t *testing.T) {
	var evicted []string
	c := lru.New(lru.Options{
		MaxEntries: 2,
		OnEvict:    func(key string, _ any) { evicted = append(evicted, key) },
	})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3) // evicts a
	c.Set("d", 4) // evicts b

	assert.Equal(t, []string{"a", "b"}, evicted)
}

// An OnEvict callback that re-enters the cache must not deadlock: the
// callback runs after the engine lock is released.
func TestCache_OnEvictReentrancy(t *testing.T) {
	var c *lru.Cache
	c = lru.New(lru.Options{
		MaxEntries: 1,
		OnEvict: func(key string, _ any) {
			_, _ = c.Get(key)
			c.Delete(key)
		},
	})
	c.Set("a", 1)
	c.Set("b", 2) // evicts a; callback re-enters
	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := newCache(64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*31+i)%128)
				switch i % 4 {
				case 0:
					c.Set(key, i)
				case 1:
					_, _ = c.Get(key)
				case 2:
					c.Delete(key)
				default:
					_ = c.Info()
				}
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
