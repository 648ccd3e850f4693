package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

// Squares builds a bitboard from square names such as "e4".
// It calls t.Fatal on a bad name.
func Squares(t *testing.T, names ...string) chess.Bitboard {
	t.Helper()
	var b chess.Bitboard
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		b = b.Set(sq)
	}
	return b
}

// Square parses a single square name, calling t.Fatal on error.
func Square(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// SquareNames lists the squares of a bitboard by name, lowest index first.
func SquareNames(b chess.Bitboard) []string {
	names := make([]string, 0, b.Count())
	for _, sq := range b.Squares() {
		names = append(names, sq.String())
	}
	return names
}

// AssertSquares compares two bitboards and reports the difference as
// square names.
func AssertSquares(t *testing.T, got, want chess.Bitboard, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	diff := cmp.Diff(SquareNames(want), SquareNames(got))
	fail(t, "square set mismatch (-want +got):\n"+diff, msgAndArgs...)
}
