package config

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// BatchConfig holds settings for processing files of FEN records.
type BatchConfig struct {
	// Workers is the number of worker goroutines (0 = runtime.NumCPU())
	Workers int `json:"workers"`

	// BufferSize is the capacity of the work and result channels
	BufferSize int `json:"buffer_size"`

	// FailFast stops the batch at the first invalid record
	FailFast bool `json:"fail_fast"`
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    0,
		BufferSize: 64,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be positive: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
