// Package cache provides a small sharded LRU cache used for glyph outline
// and metric lookups. Faces may be shared by many concurrent conversions, so
// the cache shards its lock to keep contention low.
package cache

import (
	"hash/fnv"
	"sync"
)

const (
	// shardCount is a power of 2 so shard selection is a bitwise AND.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256
)

// Hasher computes a hash for a key, used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Uint32Hasher spreads a 32-bit key (a glyph ID) across shards.
func Uint32Hasher(v uint32) uint64 {
	x := uint64(v)
	x *= 0x9e3779b97f4a7c15 // Fibonacci hashing constant
	return x ^ (x >> 32)
}

// Sharded is a thread-safe sharded LRU cache.
type Sharded[K comparable, V any] struct {
	shards   [shardCount]shard[K, V]
	hasher   Hasher[K]
	capacity int
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	// LRU ring: head.next is most recent, head.prev is oldest.
	head node[K, V]
}

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// NewSharded creates a sharded cache with the given capacity per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		s := &c.shards[i]
		s.entries = make(map[K]*node[K, V])
		s.head.prev = &s.head
		s.head.next = &s.head
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key, refreshing its LRU position.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.moveToFront(n)
	return n.value, true
}

// Set stores a value, evicting the oldest entries past capacity.
// The value is stored as-is (not copied); callers must not modify it after
// caching.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value, c.capacity)
}

// GetOrCreate returns the cached value for key, calling create to fill the
// entry on a miss. create runs with the shard lock held so concurrent
// lookups of the same key compute it once; keep it fast.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[key]; ok {
		s.moveToFront(n)
		return n.value
	}
	value := create()
	s.set(key, value, c.capacity)
	return value
}

// Len returns the total number of cached entries.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// set inserts or updates an entry; the shard lock must be held.
func (s *shard[K, V]) set(key K, value V, capacity int) {
	if n, ok := s.entries[key]; ok {
		n.value = value
		s.moveToFront(n)
		return
	}
	for len(s.entries) >= capacity {
		oldest := s.head.prev
		s.unlink(oldest)
		delete(s.entries, oldest.key)
	}
	n := &node[K, V]{key: key, value: value}
	s.entries[key] = n
	s.pushFront(n)
}

func (s *shard[K, V]) pushFront(n *node[K, V]) {
	n.prev = &s.head
	n.next = s.head.next
	n.prev.next = n
	n.next.prev = n
}

func (s *shard[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

func (s *shard[K, V]) moveToFront(n *node[K, V]) {
	if s.head.next == n {
		return
	}
	s.unlink(n)
	s.pushFront(n)
}
