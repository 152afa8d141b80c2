// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the result cache capacity used when no explicit size
// is configured.
const DefaultCacheSize = 128

// cacheKey identifies a memoizable call. Operands are keyed by their
// canonical string form so float and decimal values hash consistently.
type cacheKey struct {
	op   Op
	a, b string
}

// resultCache memoizes results of the pure operations. Capacity is fixed at
// construction; the least-recently-used entry is evicted on overflow. Only
// successful results are ever stored.
type resultCache struct {
	entries *lru.Cache[cacheKey, Value]
}

// newResultCache returns nil when size <= 0, which disables caching.
func newResultCache(size int) *resultCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[cacheKey, Value](size)
	if err != nil {
		return nil
	}
	return &resultCache{entries: entries}
}

func (c *resultCache) get(key cacheKey) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	return c.entries.Get(key)
}

func (c *resultCache) add(key cacheKey, v Value) {
	if c == nil {
		return
	}
	c.entries.Add(key, v)
}

func (c *resultCache) len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
