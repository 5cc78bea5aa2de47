package movegen

import (
	"github.com/garlicgarrison/multiverse-gen/multiverse"
)

/*
	Cache wraps a one-shot sequence and memoizes everything it yields, so
	the sequence can be re-read and probed cheaply. The cache is strictly
	append-only and mirrors the iteration order exactly. You should hold
	one of these whenever you need to revisit a generator's output.
*/
type Cache[T comparable] struct {
	iter  Iter[T]
	cache []T
}

func NewCache[T comparable](iter Iter[T]) *Cache[T] {
	if iter == nil {
		return nil
	}
	return &Cache[T]{iter: iter}
}

// Next yields the next element, if present, and caches it.
func (c *Cache[T]) Next() (T, bool) {
	v, ok := c.iter.Next()
	if !ok {
		var zero T
		return zero, false
	}
	c.cache = append(c.cache, v)
	return v, true
}

// Len returns how many elements have been cached so far.
func (c *Cache[T]) Len() int {
	return len(c.cache)
}

/*
	ValidateCached looks for v among the cached elements only; the wrapped
	sequence is never queried. A false result does not mean v is absent
	from the sequence, only that it has not been observed yet.
*/
func (c *Cache[T]) ValidateCached(v T) bool {
	for _, cached := range c.cache {
		if cached == v {
			return true
		}
	}
	return false
}

// Validate looks through the cache first, then drains the wrapped sequence
// (caching as it goes) until v is found or the sequence is exhausted.
func (c *Cache[T]) Validate(v T) bool {
	if c.ValidateCached(v) {
		return true
	}

	for {
		next, ok := c.Next()
		if !ok {
			return false
		}
		if next == v {
			return true
		}
	}
}

// GetCached returns the n-th yielded element if it is already in the cache.
func (c *Cache[T]) GetCached(n int) (T, bool) {
	if n >= 0 && n < len(c.cache) {
		return c.cache[n], true
	}
	var zero T
	return zero, false
}

// Get returns the n-th element of the sequence, draining the wrapped
// sequence as far as needed. Absent if the sequence ends before n.
func (c *Cache[T]) Get(n int) (T, bool) {
	if v, ok := c.GetCached(n); ok {
		return v, true
	}

	for {
		v, ok := c.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if len(c.cache) == n+1 {
			return v, true
		}
	}
}

// CacheMoves is the move-sequence instantiation of Cache.
type CacheMoves = Cache[multiverse.Move]

// NewCacheMoves builds a caching wrapper over a generator's sequence.
// Returns nil when the generator reports absence.
func NewCacheMoves(g GenMoves, game *multiverse.Game, partial *multiverse.PartialGame) *CacheMoves {
	return NewCache(g.GenerateMoves(game, partial))
}
