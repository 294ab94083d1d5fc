// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import "github.com/prometheus/client_golang/prometheus"

// fetcherMetrics holds Prometheus metrics for the entity cache.
type fetcherMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

func newFetcherMetrics() *fetcherMetrics {
	return &fetcherMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mardi_fdo",
			Subsystem: "entity_cache",
			Name:      "hits_total",
			Help:      "Total number of entity cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mardi_fdo",
			Subsystem: "entity_cache",
			Name:      "misses_total",
			Help:      "Total number of entity cache misses",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mardi_fdo",
			Subsystem: "entity_cache",
			Name:      "evictions_total",
			Help:      "Total number of entries evicted to stay within capacity",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mardi_fdo",
			Subsystem: "entity_cache",
			Name:      "size",
			Help:      "Current number of memoized entities",
		}),
	}
}

// register adds every metric to reg.
func (m *fetcherMetrics) register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.hits, m.misses, m.evictions, m.size} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
