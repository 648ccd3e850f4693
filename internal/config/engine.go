package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// EngineConfig holds settings passed to every engine.Game.
type EngineConfig struct {
	// ClockPolicy names the halfmove clock rule ("pawn-or-capture", "pawn-only")
	ClockPolicy string `json:"clock_policy"`

	// AttackCacheCapacity enables the attack cache when positive
	AttackCacheCapacity int `json:"attack_cache_capacity"`
}

// NewEngineConfig creates an EngineConfig with default values.
// The attack cache is disabled by default.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		ClockPolicy: engine.ClockResetOnPawnOrCapture.String(),
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if _, err := engine.ParseClockPolicy(e.ClockPolicy); err != nil {
		return fmt.Errorf("clock policy %q (valid: %s): %w",
			e.ClockPolicy, strings.Join(sortedNames(engine.ClockPolicyNames()), ", "), errors.ErrInvalidConfig)
	}
	if e.AttackCacheCapacity < 0 {
		return fmt.Errorf("attack cache capacity %d is negative: %w", e.AttackCacheCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

// GameOptions converts the configuration to engine options.
// The config must have passed Validate.
func (e *EngineConfig) GameOptions(log logrus.FieldLogger) []engine.Option {
	policy, err := engine.ParseClockPolicy(e.ClockPolicy)
	if err != nil {
		policy = engine.ClockResetOnPawnOrCapture
	}
	opts := []engine.Option{engine.WithClockPolicy(policy), engine.WithLogger(log)}
	if e.AttackCacheCapacity > 0 {
		opts = append(opts, engine.WithAttackCache(e.AttackCacheCapacity))
	}
	return opts
}

// sortedNames returns the keys of a name table in sorted order.
func sortedNames[V any](table map[string]V) []string {
	names := maps.Keys(table)
	slices.Sort(names)
	return names
}
