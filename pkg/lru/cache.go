// Package lru provides a fixed-capacity LRU cache mapping integer keys
// to integer values.
//
// The design is the classic two-structure one: a map gives O(1) key
// lookup, and a doubly-linked list bounded by head/tail sentinels tracks
// recency (front = most recently used, back = least). The two structures
// always hold exactly the same set of keys.
//
// The cache is not safe for concurrent use. Operations are multi-step
// pointer mutations, so callers who share a Cache across goroutines must
// guard the entire Get/Put/Close surface with their own mutex.
package lru

import "errors"

var (
	// ErrInvalidCapacity is returned by New for a capacity of zero or less.
	ErrInvalidCapacity = errors.New("lru: capacity must be positive")

	// ErrClosed is returned by Put after Close.
	ErrClosed = errors.New("lru: cache is closed")
)

// Cache is a fixed-capacity LRU cache of int keys to int values.
//
// The zero value is not usable; construct with New.
type Cache struct {
	capacity int
	items    map[int]*node
	order    *orderList
	closed   bool
}

// New creates a cache holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity is zero or negative.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[int]*node, capacity),
		order:    newOrderList(),
	}, nil
}

// Get returns the value stored under key and marks it most recently
// used. A hit always promotes, even when the entry is already at the
// front. Misses have no side effect. A closed cache always misses.
//
// Get never allocates.
func (c *Cache) Get(key int) (int, bool) {
	if c.closed {
		return 0, false
	}

	n, ok := c.items[key]
	if !ok {
		return 0, false
	}

	c.order.moveToFront(n)
	return n.value, true
}

// Put stores value under key and marks the entry most recently used.
//
// If the key is already present its value is updated in place and the
// entry is promoted; the size does not change. Otherwise a new entry is
// inserted, evicting the least recently used entry first when the cache
// is full. Eviction happens strictly before insertion, so the capacity
// bound holds at every point, never just at return.
//
// Returns ErrClosed if the cache has been closed.
func (c *Cache) Put(key, value int) error {
	if c.closed {
		return ErrClosed
	}

	if n, ok := c.items[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return nil
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	n := &node{key: key, value: value}
	c.order.pushFront(n)
	c.items[key] = n
	return nil
}

// Peek returns the value stored under key without promoting it.
func (c *Cache) Peek(key int) (int, bool) {
	n, ok := c.items[key]
	if !ok {
		return 0, false
	}
	return n.value, true
}

// Contains reports whether key is present, without promoting it.
func (c *Cache) Contains(key int) bool {
	_, ok := c.items[key]
	return ok
}

// Oldest returns the entry that the next insertion of a new key would
// evict, without promoting it. ok is false when the cache is empty.
func (c *Cache) Oldest() (key, value int, ok bool) {
	n := c.order.back()
	if n == nil {
		return 0, 0, false
	}
	return n.key, n.value, true
}

// Len returns the number of entries currently stored.
func (c *Cache) Len() int {
	return len(c.items)
}

// Keys returns all keys ordered from most to least recently used.
func (c *Cache) Keys() []int {
	if c.closed {
		return nil
	}
	out := make([]int, 0, len(c.items))
	for n := c.order.head.next; n != c.order.tail; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// Close tears the cache down: every entry is unlinked exactly once, the
// index is cleared, and the sentinels are detached. The map is the
// authoritative enumeration of live entries, so teardown iterates it
// rather than walking the list.
//
// Close is idempotent. After Close, Put returns ErrClosed and Get
// always misses.
func (c *Cache) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	for key, n := range c.items {
		c.order.remove(n)
		delete(c.items, key)
	}
	c.order.detach()
	return nil
}

// evictOldest removes the least recently used entry from both
// structures. Caller guarantees the cache is non-empty.
func (c *Cache) evictOldest() {
	n := c.order.back()
	if n == nil {
		return
	}
	delete(c.items, n.key)
	c.order.remove(n)
}
