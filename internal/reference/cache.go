package reference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"phonebook/pkg/platform/sentinel"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "phonebook_reference_cache_lookups_total",
	Help: "Reference cache lookups by list and outcome",
}, []string{"list", "outcome"})

// Clock abstracts time.Now for deterministic tests.
type Clock func() time.Time

type entry struct {
	values    map[string]struct{}
	fetchedAt time.Time
}

// Cache serves reference lists with TTL-bounded staleness. Population is lazy:
// nothing is fetched until the first Lookup. Concurrent misses on the same
// list are collapsed through singleflight; both writers would fetch the same
// upstream truth within one TTL window, so last-writer-wins on refresh.
type Cache struct {
	client Client
	ttl    time.Duration
	clock  Clock

	mu      sync.RWMutex
	entries map[ListName]entry
	group   singleflight.Group
}

// CacheOption configures a Cache instance.
type CacheOption func(*Cache)

// WithCacheClock sets the clock function for testability.
func WithCacheClock(clock Clock) CacheOption {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewCache constructs an empty cache over the given client.
func NewCache(client Client, ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		client:  client,
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[ListName]entry),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Lookup returns the membership set for the named list, fetching from upstream
// on miss or TTL expiry. Fetch failures wrap sentinel.ErrUnavailable so
// callers can distinguish "upstream unreachable" from content violations.
func (c *Cache) Lookup(ctx context.Context, list ListName) (map[string]struct{}, error) {
	c.mu.RLock()
	cached, ok := c.entries[list]
	c.mu.RUnlock()

	if ok && c.clock().Sub(cached.fetchedAt) < c.ttl {
		cacheLookups.WithLabelValues(string(list), "hit").Inc()
		return cached.values, nil
	}
	cacheLookups.WithLabelValues(string(list), "miss").Inc()

	result, err, _ := c.group.Do(string(list), func() (any, error) {
		values, err := c.client.FetchList(ctx, list)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w: %w", list, err, sentinel.ErrUnavailable)
		}

		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}

		c.mu.Lock()
		c.entries[list] = entry{values: set, fetchedAt: c.clock()}
		c.mu.Unlock()

		return set, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]struct{}), nil
}
