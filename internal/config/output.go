package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// OutputFormat selects how positions and batch results are printed.
type OutputFormat string

const (
	TextFormat OutputFormat = "text" // Board diagram and plain lines
	JSONFormat OutputFormat = "json" // One JSON document per position
)

// outputFormats lists the accepted format names.
var outputFormats = map[string]OutputFormat{
	string(TextFormat): TextFormat,
	string(JSONFormat): JSONFormat,
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if f, ok := outputFormats[strings.ToLower(name)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("output format %q (valid: %s): %w",
		name, strings.Join(sortedNames(outputFormats), ", "), errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat `json:"format"`

	// Unicode draws the board with chess glyphs instead of FEN letters
	Unicode bool `json:"unicode"`

	// Coordinates prints file letters and rank numbers around the diagram
	Coordinates bool `json:"coordinates"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      TextFormat,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	_, err := ParseOutputFormat(string(o.Format))
	return err
}
