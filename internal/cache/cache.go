package cache

import (
	"container/list"
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New when capacity is below one.
var ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

// Cache is the subset of operations shared by LRU and Locked.
type Cache[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Len() int
}

// LRU is a fixed-capacity key–value cache with least-recently-used eviction.
//
// A map gives O(1) key lookup, and a doubly-linked list maintains recency ordering.
// The list front is the least recently used key and the back the most recently used,
// so eviction always pops the front.
//
// LRU is not safe for concurrent use. Wrap it in Locked when it is shared.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List

	clone    func(V) V
	listener Listener[K]
	stats    Stats
}

// entry is the value stored in the list elements.
// We keep the key here because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New constructs an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, pkgerrors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		listener: NopListener[K]{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Must is like New but panics on an invalid capacity.
func Must[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Put inserts or updates key.
//
// Updating an existing key counts as use and never evicts. Inserting a new key
// into a full cache evicts exactly one entry, the least recently used.
func (c *LRU[K, V]) Put(key K, value V) {
	value = c.copyValue(value)

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.touch(el)
		c.stats.Updates++
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})
	c.stats.Inserts++
}

// Get returns the value stored for key and marks it most recently used.
// A miss leaves the cache untouched.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		c.listener.OnMiss(key)
		var zero V
		return zero, false
	}

	c.touch(el)
	c.stats.Hits++
	c.listener.OnHit(key)
	return c.copyValue(el.Value.(*entry[K, V]).value), true
}

// Peek returns the value stored for key without updating its recency or stats.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.copyValue(el.Value.(*entry[K, V]).value), true
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.deleteElement(el)
	return true
}

// Purge drops every entry. Listeners are not notified.
func (c *LRU[K, V]) Purge() {
	clear(c.items)
	c.order.Init()
}

// Len returns the number of resident entries.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Cap returns the capacity fixed at construction.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Keys returns resident keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	out := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

// Stats returns a snapshot of the operation counters.
func (c *LRU[K, V]) Stats() Stats {
	return c.stats
}

// touch promotes el to most recently used.
func (c *LRU[K, V]) touch(el *list.Element) {
	c.order.MoveToBack(el)
}

func (c *LRU[K, V]) evictOldest() {
	el := c.order.Front()
	if el == nil {
		return
	}
	key := el.Value.(*entry[K, V]).key
	c.deleteElement(el)
	c.stats.Evictions++
	c.listener.OnEvict(key)
}

func (c *LRU[K, V]) deleteElement(el *list.Element) {
	delete(c.items, el.Value.(*entry[K, V]).key)
	c.order.Remove(el)
}

func (c *LRU[K, V]) copyValue(v V) V {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}
