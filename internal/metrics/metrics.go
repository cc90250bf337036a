// Package metrics exports cache activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts cache events. It satisfies cache.Listener[K].
type Collector[K comparable] struct {
	namespace string
	reg       prometheus.Registerer

	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Evictions prometheus.Counter
}

// NewCollector creates the cache counters under namespace and registers them with reg.
func NewCollector[K comparable](namespace string, reg prometheus.Registerer) (*Collector[K], error) {
	c := &Collector[K]{
		namespace: namespace,
		reg:       reg,
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of cache lookups that found a resident key",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of cache lookups for absent keys",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of least-recently-used entries evicted",
		}),
	}

	for _, col := range []prometheus.Collector{c.Hits, c.Misses, c.Evictions} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "register cache metric")
		}
	}
	return c, nil
}

// TrackSize registers a gauge reporting the current entry count from size.
func (c *Collector[K]) TrackSize(size func() int) error {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of resident cache entries",
	}, func() float64 { return float64(size()) })
	return errors.Wrap(c.reg.Register(g), "register cache size gauge")
}

func (c *Collector[K]) OnHit(K)   { c.Hits.Inc() }
func (c *Collector[K]) OnMiss(K)  { c.Misses.Inc() }
func (c *Collector[K]) OnEvict(K) { c.Evictions.Inc() }

// Handler returns an HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
