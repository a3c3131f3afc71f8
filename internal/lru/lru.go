// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// lru.go — bounded in-memory cache with least-recently-used eviction.
// O(1) Get/Set/Delete via a key→element map over a doubly linked list;
// one engine-wide mutex guards every operation end to end.

// Package lru provides the in-memory LRU cache engine.
package lru

import (
	"container/list"
	"sync"
)

// Capacity sentinels for Options.MaxEntries.
const (
	// Unbounded disables eviction entirely.
	Unbounded = 0
	// NoStore makes every Set evict its own entry immediately; the cache
	// never holds anything. Useful for disabling caching without changing
	// call sites.
	NoStore = -1
)

// Options configures a Cache.
type Options struct {
	// MaxEntries bounds the number of live entries when positive.
	// Unbounded (0) never evicts; NoStore (-1) stores nothing.
	MaxEntries int
	// OnEvict, when set, is called for each capacity-evicted pair. It runs
	// after the engine lock is released, so it may safely call back into
	// the cache. Delete and Clear do not trigger it.
	OnEvict func(key string, value any)
}

// entry is a live key/value node. Entries never escape the engine; Get
// returns the stored value, never the node.
type entry struct {
	key   string
	value any
}

// Cache is a bounded key→value store with recency-ordered eviction. The
// front of evictList is the most-recently-used entry, the back the least.
// All methods are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	items      map[string]*list.Element
	evictList  *list.List
	maxEntries int
	onEvict    func(key string, value any)
	hits       int64
	misses     int64
}

// Stats is the snapshot returned by Info.
type Stats struct {
	Hits       int64
	Misses     int64
	MaxEntries int
	Len        int
}

// New creates a Cache with the given options.
func New(opts Options) *Cache {
	return &Cache{
		items:      make(map[string]*list.Element),
		evictList:  list.New(),
		maxEntries: opts.MaxEntries,
		onEvict:    opts.OnEvict,
	}
}

// Get returns the value stored under key. On a hit the entry becomes the
// most-recently-used and the hit counter increments; on a miss the miss
// counter increments and ok is false. The ok result is the miss signal, so
// a stored nil value is still a hit.
func (c *Cache) Get(key string) (value any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.evictList.MoveToFront(el)
	c.hits++
	return el.Value.(*entry).value, true
}

// Set stores value under key as the most-recently-used entry. Overwriting
// an existing key updates it in place; inserting at capacity first evicts
// the least-recently-used entry, so the bound holds at every observable
// point. Counters are unaffected.
func (c *Cache) Set(key string, value any) {
	var evictedKey string
	var evictedVal any
	var evicted bool

	c.mu.Lock()
	switch {
	case c.maxEntries == NoStore:
		// Degenerate store: the inserted pair is its own eviction.
		evictedKey, evictedVal, evicted = key, value, true
	default:
		if el, ok := c.items[key]; ok {
			el.Value.(*entry).value = value
			c.evictList.MoveToFront(el)
			break
		}
		if c.maxEntries > 0 && c.evictList.Len() >= c.maxEntries {
			back := c.evictList.Back()
			e := back.Value.(*entry)
			delete(c.items, e.key)
			c.evictList.Remove(back)
			evictedKey, evictedVal, evicted = e.key, e.value, true
		}
		c.items[key] = c.evictList.PushFront(&entry{key: key, value: value})
	}
	c.mu.Unlock()

	// Notify outside the lock so caller code may re-enter the cache.
	if evicted && c.onEvict != nil {
		c.onEvict(evictedKey, evictedVal)
	}
}

// Delete removes the entry for key if present; absent keys are a no-op,
// not an error. Hit/miss counters are unaffected.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		delete(c.items, key)
		c.evictList.Remove(el)
	}
}

// Clear removes every entry and resets the hit/miss counters. Capacity is
// unchanged.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
	c.hits = 0
	c.misses = 0
}

// Len returns the current number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Info returns a point-in-time snapshot of the counters, capacity, and
// current size. Operations racing with Info may or may not be reflected;
// the snapshot itself is internally consistent.
func (c *Cache) Info() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:       c.hits,
		Misses:     c.misses,
		MaxEntries: c.maxEntries,
		Len:        c.evictList.Len(),
	}
}
