package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
)

// shardCount is the number of independently locked shards. A power of
// two, so the shard index is a mask of the key hash.
const shardCount = 16

// DefaultCapacity is the total capacity used when New is given a
// capacity of zero or less.
const DefaultCapacity = 256

// Cache is a thread-safe LRU cache, generic over key and value.
//
// Entries are spread over shards by key hash, each shard under its own
// lock, so concurrent loaders rarely contend. Every shard evicts its own
// least recently used entry when it runs past its share of the capacity;
// the total never exceeds Capacity, but a skewed key distribution can
// evict earlier than a uniform one.
//
// The zero value is not usable; create caches with New. A Cache must not
// be copied after creation.
type Cache[K comparable, V any] struct {
	seed     maphash.Seed
	shards   [shardCount]shard[K, V]
	capacity int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a map plus a recency ring under one lock.
type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	ring    *lruRing[K]
}

// entry pairs a value with its ring node for O(1) recency moves.
type entry[K comparable, V any] struct {
	value V
	node  *ringNode[K]
}

// New creates a cache holding at most capacity entries in total,
// rounded up to a multiple of the shard count. A capacity of zero or
// less selects DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{
		seed:     maphash.MakeSeed(),
		capacity: (capacity + shardCount - 1) / shardCount,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[K, V])
		c.shards[i].ring = newLRURing[K]()
	}
	return c
}

// shardFor picks the shard for key by hash.
func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[maphash.Comparable(c.seed, key)&(shardCount-1)]
}

// Get returns the cached value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.ring.MoveToFront(e.node)
	v := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return v, true
}

// Set stores value under key as the most recently used entry, evicting
// the shard's oldest entries when it is full. The value is stored as-is,
// not copied.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.ring.MoveToFront(e.node)
		return
	}
	c.evictLocked(s)
	s.entries[key] = &entry[K, V]{value: value, node: s.ring.PushFront(key)}
}

// GetOrCreate returns the cached value for key, calling create on a miss
// and caching the result. create runs under the shard lock, so
// concurrent callers compute a key at most once; a slow create blocks
// the key's shard while it runs.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.ring.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	value := create()
	c.evictLocked(s)
	s.entries[key] = &entry[K, V]{value: value, node: s.ring.PushFront(key)}
	return value
}

// evictLocked drops the shard's oldest entries until there is room for
// one more. The caller holds s.mu.
func (c *Cache[K, V]) evictLocked(s *shard[K, V]) {
	for s.ring.Len() >= c.capacity {
		key, ok := s.ring.RemoveOldest()
		if !ok {
			return
		}
		delete(s.entries, key)
		c.evictions.Add(1)
	}
}

// Delete removes key. It reports whether an entry was removed.
func (c *Cache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.ring.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes every entry. The statistics counters keep counting.
func (c *Cache[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		clear(s.entries)
		s.ring.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the total capacity, as rounded by New.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity * shardCount
}

// Stats returns a snapshot of the cache counters. Lookups through Get
// and GetOrCreate count as hits or misses; Set does not count.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.Capacity(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Stats is a point-in-time snapshot of cache effectiveness counters.
type Stats struct {
	// Len is the number of entries at snapshot time.
	Len int

	// Capacity is the total entry capacity.
	Capacity int

	// Hits counts lookups served from the cache.
	Hits uint64

	// Misses counts lookups that found nothing.
	Misses uint64

	// Evictions counts entries dropped to make room.
	Evictions uint64
}

// HitRate returns the fraction of lookups served from the cache, in
// [0, 1]. It is 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
