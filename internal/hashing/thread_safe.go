package hashing

import (
	"sync"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

// Cache is the lookup interface shared by the attack cache variants.
type Cache interface {
	Get(fingerprint uint64, by chess.Colour) (chess.Bitboard, bool)
	Put(fingerprint uint64, by chess.Colour, attacks chess.Bitboard)
	Reset()
}

// ThreadSafeAttackCache wraps AttackCache with mutex protection for concurrent access.
type ThreadSafeAttackCache struct {
	cache *AttackCache
	mu    sync.Mutex
}

// NewThreadSafeAttackCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeAttackCache(maxCapacity int) *ThreadSafeAttackCache {
	return &ThreadSafeAttackCache{
		cache: NewAttackCache(maxCapacity),
	}
}

// Get returns the cached attack set for the position and attacker.
// Lookups update the hit counters, so they take the write lock.
func (c *ThreadSafeAttackCache) Get(fingerprint uint64, by chess.Colour) (chess.Bitboard, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(fingerprint, by)
}

// Put stores an attack set.
func (c *ThreadSafeAttackCache) Put(fingerprint uint64, by chess.Colour, attacks chess.Bitboard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Put(fingerprint, by, attacks)
}

// Len returns the number of cached attack sets.
func (c *ThreadSafeAttackCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Stats returns the number of cache hits and misses.
func (c *ThreadSafeAttackCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Stats()
}

// Reset clears all entries.
func (c *ThreadSafeAttackCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Reset()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeAttackCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}

var (
	_ Cache = (*AttackCache)(nil)
	_ Cache = (*ThreadSafeAttackCache)(nil)
)
