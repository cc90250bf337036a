package cache

// Option configures an LRU at construction.
type Option[K comparable, V any] func(*LRU[K, V])

// WithListener routes hit, miss and eviction events to l.
// A nil listener keeps the default no-op.
func WithListener[K comparable, V any](l Listener[K]) Option[K, V] {
	return func(c *LRU[K, V]) {
		if l != nil {
			c.listener = l
		}
	}
}

// WithClone copies values on the way in (Put) and on the way out (Get, Peek).
//
// Use it when V holds references, such as slices or maps, that callers may mutate.
func WithClone[K comparable, V any](fn func(V) V) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.clone = fn
	}
}

// CloneBytes is a clone function for []byte values.
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
