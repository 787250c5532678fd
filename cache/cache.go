// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache provides a resource cache that loads each
// resource key at most once per loading session.
package cache

import (
	"fmt"

	"cogentcore.org/blade/base/ordmap"
)

// Loader loads the resource for the given key.
type Loader[V any] func(key string) (V, error)

// Stats are the request counters of a [Cache].
type Stats struct {

	// Hits is the number of requests served from the cache.
	Hits int

	// Misses is the number of requests that called the loader.
	Misses int

	// Failures is the number of loader calls that returned an error.
	Failures int
}

func (st Stats) String() string {
	return fmt.Sprintf("hits: %d, misses: %d, failures: %d", st.Hits, st.Misses, st.Failures)
}

// Cache maps resource keys to loaded resources. A key is added the
// first time it loads successfully, and is kept until [Cache.Reset].
// Failed loads are not remembered, so requesting the key again
// calls the loader again.
//
// A Cache is not safe for concurrent use: the at-most-once guarantee
// holds for sequential requests only. The zero value is ready to use.
type Cache[V any] struct {
	items ordmap.Map[string, V]
	stats Stats
}

// New returns a new empty Cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{}
}

// Request returns the resource for key, calling load to get it if it
// is not already cached. The error from load is returned as is.
func (c *Cache[V]) Request(key string, load Loader[V]) (V, error) {
	if v, ok := c.items.ValueByKeyTry(key); ok {
		c.stats.Hits++
		return v, nil
	}
	c.stats.Misses++
	v, err := load(key)
	if err != nil {
		c.stats.Failures++
		var zv V
		return zv, err
	}
	c.items.Add(key, v)
	return v, nil
}

// Get returns the cached resource for key, without loading it.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.items.ValueByKeyTry(key)
}

// Len returns the number of cached resources.
func (c *Cache[V]) Len() int {
	return c.items.Len()
}

// Keys returns the cached keys, in the order they were first loaded.
func (c *Cache[V]) Keys() []string {
	return c.items.Keys()
}

// Values returns the cached resources, in the order they were first loaded.
func (c *Cache[V]) Values() []V {
	return c.items.Values()
}

// Stats returns the request counters.
func (c *Cache[V]) Stats() Stats {
	return c.stats
}

// Reset forgets all cached resources and zeroes the counters.
// It does not release the resources.
func (c *Cache[V]) Reset() {
	c.items.Reset()
	c.stats = Stats{}
}
