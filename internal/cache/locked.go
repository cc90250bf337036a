package cache

import "sync"

// Locked serializes every call to an LRU behind a single mutex.
//
// Get mutates recency order, so a plain Mutex is used rather than an RWMutex.
type Locked[K comparable, V any] struct {
	mu  sync.Mutex
	lru *LRU[K, V]
}

// NewLocked constructs a mutex-guarded cache. It fails like New.
func NewLocked[K comparable, V any](capacity int, opts ...Option[K, V]) (*Locked[K, V], error) {
	lru, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{lru: lru}, nil
}

func (l *Locked[K, V]) Put(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lru.Put(key, value)
}

func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Get(key)
}

func (l *Locked[K, V]) Peek(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Peek(key)
}

func (l *Locked[K, V]) Remove(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Remove(key)
}

func (l *Locked[K, V]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lru.Purge()
}

func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Len()
}

// Cap does not need the lock; capacity never changes.
func (l *Locked[K, V]) Cap() int {
	return l.lru.Cap()
}

func (l *Locked[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Keys()
}

func (l *Locked[K, V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lru.Stats()
}
