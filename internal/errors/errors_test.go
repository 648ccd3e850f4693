package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidMoveNotation", ErrInvalidMoveNotation, ErrInvalidMoveNotation},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidBoard", ErrInvalidBoard, ErrInvalidBoard},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidFEN, ErrInvalidSquare) {
		t.Error("ErrInvalidFEN should not match ErrInvalidSquare")
	}
	if errors.Is(ErrIllegalMove, ErrInvalidMoveNotation) {
		t.Error("ErrIllegalMove should not match ErrInvalidMoveNotation")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				MoveText: "e2e5",
				FEN:      "8/8/8/8/8/8/8/8 w - - 0 1",
			},
			contains: []string{"ply 12", "e2e5", "8/8/8/8", "illegal move"},
		},
		{
			name:     "error only",
			err:      &GameError{Err: ErrInvalidFEN},
			contains: []string{"invalid fen"},
		},
		{
			name:     "context only",
			err:      &GameError{PlyNum: 3},
			contains: []string{"ply 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:    ErrIllegalMove,
		PlyNum: 1,
	}

	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}

	if !errors.Is(gameErr, ErrIllegalMove) {
		t.Error("errors.Is(gameErr, ErrIllegalMove) = false, want true")
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "e1g1",
	}

	wrapped := fmt.Errorf("apply failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, &GameError) = false, want true")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("PlyNum = %d, want 24", extracted.PlyNum)
	}
	if extracted.MoveText != "e1g1" {
		t.Errorf("MoveText = %q, want %q", extracted.MoveText, "e1g1")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "field and column",
			err: &ParseError{
				Err:      ErrInvalidFEN,
				Field:    "placement",
				Column:   5,
				Expected: "piece letter, digit or '/'",
				Got:      "'x'",
			},
			want: "placement:5: expected piece letter, digit or '/', got 'x': invalid FEN string",
		},
		{
			name: "column without field",
			err: &ParseError{
				Err:      ErrInvalidMoveNotation,
				Column:   2,
				Expected: "rank 1-8",
				Got:      "'9'",
			},
			want: "column 2: expected rank 1-8, got '9': invalid algebraic notation",
		},
		{
			name: "got only",
			err:  &ParseError{Got: "'?'"},
			want: "unexpected '?'",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
		{
			name: "error only",
			err:  &ParseError{Err: ErrInvalidSquare},
			want: "invalid square",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := fmt.Errorf("reading position: %w", &ParseError{Err: ErrInvalidFEN, Field: "placement"})

	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(err, ErrInvalidFEN) = false, want true")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As(err, &ParseError) = false, want true")
	}
	if pe.Field != "placement" {
		t.Errorf("Field = %q, want %q", pe.Field, "placement")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidConfig, "field %q", "clock_policy")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("wrapped error should match ErrInvalidConfig")
	}
	if !strings.HasPrefix(err.Error(), `field "clock_policy": `) {
		t.Errorf("Wrapf() = %q, missing context prefix", err.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive)
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
