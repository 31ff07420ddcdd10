// Package cache provides a sharded LRU cache for GPU objects built from
// generated programs, such as compiled shader modules.
//
// Entries are keyed by any comparable key. A Hasher spreads keys over the
// shards; shader.IdentityHasher is the hasher for program identities.
// Evicted entries are handed to an optional callback so the owner can
// release the GPU object behind them.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Hasher computes the shard hash of a key.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len           int
	Capacity      int // per shard
	TotalCapacity int
	Hits          uint64
	Misses        uint64
	Evictions     uint64
	HitRate       float64
}

// ShardedCache is a thread-safe LRU cache split into ShardCount shards,
// each with its own lock and capacity.
type ShardedCache[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int
	onEvict  func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

type evicted[K comparable, V any] struct {
	key   K
	value V
}

// NewSharded creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &ShardedCache[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

// OnEvict sets fn to be called for every entry dropped by capacity
// eviction, Delete or Clear. fn runs after the shard lock is released.
// Call it before the cache is shared.
func (c *ShardedCache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

func (c *ShardedCache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get returns the value for key and marks it most recently used.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	_, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	v := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return v, true
}

// Set stores value under key, replacing any previous value. A replaced
// value is passed to the eviction callback.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	var dropped []evicted[K, V]
	if e, ok := s.entries[key]; ok {
		if c.onEvict != nil {
			dropped = append(dropped, evicted[K, V]{key, e.value})
		}
		e.value = value
		s.lru.MoveToFront(e.node)
	} else {
		dropped = c.insert(s, key, value)
	}
	s.mu.Unlock()

	c.release(dropped)
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. create runs under the shard lock so concurrent callers for
// the same key create once. Errors are returned and not cached.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.peek(key); ok {
		return v, nil
	}

	s := c.shardFor(key)
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		v := e.value
		s.mu.Unlock()
		c.hits.Add(1)
		return v, nil
	}

	c.misses.Add(1)
	v, err := create()
	if err != nil {
		s.mu.Unlock()
		var zero V
		return zero, err
	}
	dropped := c.insert(s, key, v)
	s.mu.Unlock()

	c.release(dropped)
	return v, nil
}

// peek is the read-locked fast path of GetOrCreate. It counts hits only.
func (c *ShardedCache[K, V]) peek(key K) (V, bool) {
	s := c.shardFor(key)

	s.mu.RLock()
	_, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// insert adds a new entry to s, evicting the oldest entries past capacity.
// Callers hold s.mu.
func (c *ShardedCache[K, V]) insert(s *shard[K, V], key K, value V) []evicted[K, V] {
	var dropped []evicted[K, V]
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		if c.onEvict != nil {
			dropped = append(dropped, evicted[K, V]{oldest, s.entries[oldest].value})
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
	return dropped
}

func (c *ShardedCache[K, V]) release(dropped []evicted[K, V]) {
	for _, d := range dropped {
		c.onEvict(d.key, d.value)
	}
}

// Delete removes key. It reports whether the key was present.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)

	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		s.lru.Remove(e.node)
		delete(s.entries, key)
	}
	s.mu.Unlock()

	if ok && c.onEvict != nil {
		c.onEvict(key, e.value)
	}
	return ok
}

// Clear removes all entries.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		var dropped []evicted[K, V]
		if c.onEvict != nil {
			for k, e := range s.entries {
				dropped = append(dropped, evicted[K, V]{k, e.value})
			}
		}
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()

		c.release(dropped)
	}
}

// Len returns the number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShardedCache[K, V]) Capacity() int { return c.capacity }

// Stats returns a snapshot of the counters.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		Evictions:     c.evictions.Load(),
		HitRate:       rate,
	}
}

// ResetStats zeroes the counters.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
