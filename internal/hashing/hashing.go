// Package hashing provides position fingerprints and a cache of attacked
// square sets keyed by them.
package hashing

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// cacheKey identifies an attack set: a position and the attacking colour.
type cacheKey struct {
	fingerprint uint64
	by          chess.Colour
}

// AttackCache memoises attacked-square sets per position fingerprint.
// It is not safe for concurrent use; see ThreadSafeAttackCache.
type AttackCache struct {
	// entries stores attack sets by position and attacker
	entries map[cacheKey]chess.Bitboard
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	// hits and misses count lookups
	hits   int
	misses int
}

// NewAttackCache creates an empty cache. maxCapacity of 0 means unlimited.
func NewAttackCache(maxCapacity int) *AttackCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &AttackCache{
		entries:     make(map[cacheKey]chess.Bitboard),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached attack set for the position and attacker.
func (c *AttackCache) Get(fingerprint uint64, by chess.Colour) (chess.Bitboard, bool) {
	bb, ok := c.entries[cacheKey{fingerprint, by}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return bb, ok
}

// Put stores an attack set. New entries are dropped once the cache is full.
func (c *AttackCache) Put(fingerprint uint64, by chess.Colour, attacks chess.Bitboard) {
	key := cacheKey{fingerprint, by}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = attacks
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *AttackCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Len returns the number of cached attack sets.
func (c *AttackCache) Len() int {
	return len(c.entries)
}

// Stats returns the number of cache hits and misses since the last Reset.
func (c *AttackCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Reset clears all entries and counters.
func (c *AttackCache) Reset() {
	c.entries = make(map[cacheKey]chess.Bitboard)
	c.hits = 0
	c.misses = 0
}
