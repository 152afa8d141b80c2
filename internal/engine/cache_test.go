// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_HitOnRepeat(t *testing.T) {
	e := New()

	_, err := e.Apply(Add, Float(2), Float(3))
	assert.NoError(t, err)
	_, err = e.Apply(Add, Float(2), Float(3))
	assert.NoError(t, err)

	hits, misses := e.CacheStats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestCache_KeyIncludesOperatorAndOrder(t *testing.T) {
	e := New()

	_, _ = e.Apply(Add, Float(2), Float(3))
	_, _ = e.Apply(Subtract, Float(2), Float(3))
	_, _ = e.Apply(Subtract, Float(3), Float(2))

	hits, misses := e.CacheStats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(3), misses)
}

func TestCache_LRUEviction(t *testing.T) {
	e := New(WithCacheSize(2))

	_, _ = e.Apply(Add, Float(1), Float(1)) // miss
	_, _ = e.Apply(Add, Float(2), Float(2)) // miss
	assert.Equal(t, 2, e.cache.len())

	// Touch (1,1) so (2,2) becomes least recently used.
	_, _ = e.Apply(Add, Float(1), Float(1)) // hit

	_, _ = e.Apply(Add, Float(3), Float(3)) // miss, evicts (2,2)
	assert.Equal(t, 2, e.cache.len())

	_, _ = e.Apply(Add, Float(2), Float(2)) // miss again after eviction
	_, _ = e.Apply(Add, Float(1), Float(1)) // miss, (1,1) was evicted by (2,2)

	_, misses := e.CacheStats()
	assert.Equal(t, uint64(5), misses)
}

func TestCache_DivideAndModuloNeverCached(t *testing.T) {
	e := New()

	_, _ = e.Apply(Divide, Float(10), Float(5))
	_, _ = e.Apply(Divide, Float(10), Float(5))
	_, _ = e.Apply(Modulo, Float(10), Float(3))

	hits, misses := e.CacheStats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)
	assert.Equal(t, 0, e.cache.len())
}

func TestCache_DisabledMatchesEnabled(t *testing.T) {
	cached := New()
	uncached := New(WithCacheSize(0))

	for _, op := range []Op{Add, Subtract, Multiply, Power} {
		for i := 0; i < 2; i++ {
			want, err := uncached.Apply(op, Float(7), Float(3))
			assert.NoError(t, err)
			got, err := cached.Apply(op, Float(7), Float(3))
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestNewResultCache_DisabledSizes(t *testing.T) {
	assert.Nil(t, newResultCache(0))
	assert.Nil(t, newResultCache(-1))

	// A nil cache is safe to use and always misses.
	var c *resultCache
	_, ok := c.get(cacheKey{op: Add, a: "1", b: "2"})
	assert.False(t, ok)
	c.add(cacheKey{op: Add, a: "1", b: "2"}, Float(3))
	assert.Equal(t, 0, c.len())
}
