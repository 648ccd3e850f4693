package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
)

// ClockPolicy selects which moves reset the halfmove clock.
type ClockPolicy int

const (
	// ClockResetOnPawnOrCapture follows the fifty-move rule: pawn moves and
	// captures reset the clock.
	ClockResetOnPawnOrCapture ClockPolicy = iota
	// ClockResetOnPawnOnly resets the clock on pawn moves only. Captures by
	// other pieces still advance it.
	ClockResetOnPawnOnly
)

// clockPolicyNames maps configuration names to policies.
var clockPolicyNames = map[string]ClockPolicy{
	"pawn-or-capture": ClockResetOnPawnOrCapture,
	"pawn-only":       ClockResetOnPawnOnly,
}

// String returns the configuration name of the policy.
func (p ClockPolicy) String() string {
	for name, policy := range clockPolicyNames {
		if policy == p {
			return name
		}
	}
	return fmt.Sprintf("ClockPolicy(%d)", int(p))
}

// ClockPolicyNames returns the accepted policy names.
func ClockPolicyNames() map[string]ClockPolicy {
	names := make(map[string]ClockPolicy, len(clockPolicyNames))
	for k, v := range clockPolicyNames {
		names[k] = v
	}
	return names
}

// ParseClockPolicy converts a configuration name to a policy.
func ParseClockPolicy(name string) (ClockPolicy, error) {
	if p, ok := clockPolicyNames[name]; ok {
		return p, nil
	}
	return 0, errors.Wrapf(errors.ErrInvalidConfig, "unknown clock policy %q", name)
}

// resets reports whether a move of the given kind resets the clock.
func (p ClockPolicy) resets(pawnMove, capture bool) bool {
	if p == ClockResetOnPawnOnly {
		return pawnMove
	}
	return pawnMove || capture
}

// Option configures a Game.
type Option func(*Game)

// WithClockPolicy sets the halfmove clock policy.
func WithClockPolicy(p ClockPolicy) Option {
	return func(g *Game) {
		g.clockPolicy = p
	}
}

// WithAttackCache memoises opponent attack sets for the current position.
// The cache is cleared after every applied move. maxCapacity of 0 means
// unlimited.
func WithAttackCache(maxCapacity int) Option {
	return func(g *Game) {
		cache := hashing.NewAttackCache(maxCapacity)
		g.cache = cache
		g.gen = NewGenerator(cache)
	}
}

// WithSharedAttackCache memoises attack sets in a cache shared with other
// games, such as a hashing.ThreadSafeAttackCache used by several goroutines.
// Entries are keyed by position and stay valid, so the cache is not cleared
// after moves. It replaces any cache set by WithAttackCache.
func WithSharedAttackCache(cache hashing.Cache) Option {
	return func(g *Game) {
		g.cache = nil
		g.gen = NewGenerator(cache)
	}
}

// WithLogger sets the logger used for debug output of applied moves.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}
