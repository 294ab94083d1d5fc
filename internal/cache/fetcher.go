// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes entity fetches in a bounded LRU. Concurrent misses
// for the same QID share one upstream request. Failed fetches are never
// memoized.
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// DefaultCapacity is the number of entities kept when none is configured.
const DefaultCapacity = 2048

// Source fetches an entity from the backend.
type Source interface {
	Fetch(ctx context.Context, qid string) (*types.Entity, error)
}

// Fetcher is a Source that memoizes another Source. Cached entities are
// shared between callers and must not be mutated.
type Fetcher struct {
	src     Source
	entries *lru.Cache[string, *types.Entity]
	group   singleflight.Group
	metrics *fetcherMetrics
	logger  *zap.Logger
}

// Option configures a Fetcher.
type Option func(*options)

type options struct {
	registerer prometheus.Registerer
	logger     *zap.Logger
}

// WithRegisterer registers the cache metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithLogger sets the logger used for cache events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New wraps src in an LRU of cfg.Capacity entries (DefaultCapacity when
// zero or negative).
func New(src Source, cfg types.CacheConfig, opts ...Option) (*Fetcher, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[string, *types.Entity](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating entity cache: %w", err)
	}

	m := newFetcherMetrics()
	if o.registerer != nil {
		if err := m.register(o.registerer); err != nil {
			return nil, fmt.Errorf("registering cache metrics: %w", err)
		}
	}

	return &Fetcher{
		src:     src,
		entries: entries,
		metrics: m,
		logger:  o.logger,
	}, nil
}

// Fetch returns the memoized entity for qid, fetching it from the source on
// a miss. Errors from the source are returned unchanged.
//
// The shared upstream request runs detached from the caller's cancellation,
// so one caller giving up does not fail the others waiting on the same QID.
// Each caller still returns ctx.Err() as soon as its own ctx is done.
func (f *Fetcher) Fetch(ctx context.Context, qid string) (*types.Entity, error) {
	if e, ok := f.entries.Get(qid); ok {
		f.metrics.hits.Inc()
		return e, nil
	}
	f.metrics.misses.Inc()

	ch := f.group.DoChan(qid, func() (any, error) {
		e, err := f.src.Fetch(context.WithoutCancel(ctx), qid)
		if err != nil {
			return nil, err
		}
		if evicted := f.entries.Add(qid, e); evicted {
			f.metrics.evictions.Inc()
		}
		f.metrics.size.Set(float64(f.entries.Len()))
		return e, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			f.logger.Debug("shared in-flight fetch", zap.String("qid", qid))
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.Entity), nil
	}
}

// Invalidate drops qid from the cache and reports whether it was present.
func (f *Fetcher) Invalidate(qid string) bool {
	present := f.entries.Remove(qid)
	f.metrics.size.Set(float64(f.entries.Len()))
	return present
}

// Purge empties the cache.
func (f *Fetcher) Purge() {
	n := f.entries.Len()
	f.entries.Purge()
	f.metrics.size.Set(0)
	f.logger.Info("entity cache purged", zap.Int("entries", n))
}

// Len returns the number of memoized entities.
func (f *Fetcher) Len() int {
	return f.entries.Len()
}
