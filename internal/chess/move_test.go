package chess

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		notation string
		want     Move
	}{
		{"a2a4", Move{FromCol: 0, FromRow: 1, ToCol: 0, ToRow: 3}},
		{"c1f4", Move{FromCol: 2, FromRow: 0, ToCol: 5, ToRow: 3}},
		{"h8a1", Move{FromCol: 7, FromRow: 7, ToCol: 0, ToRow: 0}},
		{"e1g1", Move{FromCol: 4, FromRow: 0, ToCol: 6, ToRow: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseMove(tt.notation)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.notation, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMove(%q) mismatch (-want +got):\n%s", tt.notation, diff)
			}
			if s := got.String(); s != tt.notation {
				t.Errorf("String() = %q; want %q", s, tt.notation)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name       string
		notation   string
		wantColumn int
	}{
		{"empty", "", 0},
		{"five characters", "e2e4q", 0},
		{"three characters", "e2e", 0},
		{"digit first", "22e4", 1},
		{"letter rank", "eee4", 2},
		{"file past h", "e2i4", 3},
		{"rank nine", "e2e9", 4},
		{"rank zero", "a0a1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMove(tt.notation)
			if !stderrors.Is(err, errors.ErrInvalidMoveNotation) {
				t.Fatalf("ParseMove(%q) = %v; want ErrInvalidMoveNotation", tt.notation, err)
			}
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("error is not a ParseError: %T", err)
			}
			if pe.Column != tt.wantColumn {
				t.Errorf("Column = %d; want %d", pe.Column, tt.wantColumn)
			}
		})
	}
}

func TestMoveMirror(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}

	board := m.Mirror()
	if board.From().String() != "e2" || board.To().String() != "e4" {
		t.Errorf("Mirror() = %s -> %s; want e2 -> e4", board.From(), board.To())
	}
	if board.Mirror() != m {
		t.Error("Mirror is not its own inverse")
	}
}

func TestNewMoveFromSquares(t *testing.T) {
	from, to := SquareAt(6, 7), SquareAt(5, 5)
	m := NewMoveFromSquares(from, to)

	if m.From() != from || m.To() != to {
		t.Errorf("From, To = %s, %s; want g1, f3", m.From(), m.To())
	}
	if m != NewMove(6, 7, 5, 5) {
		t.Errorf("NewMoveFromSquares = %+v; want %+v", m, NewMove(6, 7, 5, 5))
	}
}
