package cache

// Listener observes cache activity. Callbacks run synchronously inside the
// cache operation and must not call back into the same cache.
type Listener[K comparable] interface {
	OnHit(key K)
	OnMiss(key K)
	OnEvict(key K)
}

// NopListener ignores every event.
type NopListener[K comparable] struct{}

func (NopListener[K]) OnHit(K)   {}
func (NopListener[K]) OnMiss(K)  {}
func (NopListener[K]) OnEvict(K) {}

// Stats counts cache operations since construction. Purge does not reset it.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Inserts   uint64
	Updates   uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
