package chess

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

func TestSquareString(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
	}{
		{0, 0, "a8"},
		{7, 0, "h8"},
		{0, 7, "a1"},
		{7, 7, "h1"},
		{4, 5, "e3"},
		{3, 2, "d6"},
	}

	for _, tt := range tests {
		sq := SquareAt(tt.col, tt.row)
		if got := sq.String(); got != tt.want {
			t.Errorf("SquareAt(%d, %d).String() = %q; want %q", tt.col, tt.row, got, tt.want)
		}
		if sq.Col() != tt.col || sq.Row() != tt.row {
			t.Errorf("%s: Col, Row = %d, %d; want %d, %d", tt.want, sq.Col(), sq.Row(), tt.col, tt.row)
		}
	}

	if got := Square(NumSquares).String(); got != "-" {
		t.Errorf("off-board square String() = %q; want \"-\"", got)
	}
}

func TestParseSquare(t *testing.T) {
	// Every square round-trips through its name
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d; want %d", sq.String(), got, sq)
		}
	}
}

func TestParseSquare_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantColumn int
	}{
		{"empty", "", 0},
		{"too long", "e44", 0},
		{"bad file", "i4", 1},
		{"upper case file", "E4", 1},
		{"rank zero", "a0", 2},
		{"rank nine", "h9", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSquare(tt.input)
			if !stderrors.Is(err, errors.ErrInvalidSquare) {
				t.Fatalf("ParseSquare(%q) = %v; want ErrInvalidSquare", tt.input, err)
			}
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("ParseSquare(%q) error is not a ParseError", tt.input)
			}
			if pe.Column != tt.wantColumn {
				t.Errorf("Column = %d; want %d", pe.Column, tt.wantColumn)
			}
		})
	}
}

func TestCoordinatesToBitboard(t *testing.T) {
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			bb := CoordinatesToBitboard(col, row)
			if bb.Count() != 1 {
				t.Fatalf("CoordinatesToBitboard(%d, %d) has %d bits", col, row, bb.Count())
			}
			gotCol, gotRow := BitboardToCoordinates(bb)
			if gotCol != col || gotRow != row {
				t.Errorf("BitboardToCoordinates(%x) = %d, %d; want %d, %d", bb, gotCol, gotRow, col, row)
			}
		}
	}

	// Only the lowest bit counts
	col, row := BitboardToCoordinates(CoordinatesToBitboard(5, 6) | CoordinatesToBitboard(2, 1))
	if col != 2 || row != 1 {
		t.Errorf("BitboardToCoordinates(two bits) = %d, %d; want 2, 1", col, row)
	}
}

func TestBitboardOperations(t *testing.T) {
	e4, d5 := SquareAt(4, 4), SquareAt(3, 3)

	var b Bitboard
	if !b.Empty() {
		t.Error("zero bitboard is not empty")
	}

	b = b.Set(e4).Set(d5)
	if !b.Has(e4) || !b.Has(d5) || b.Count() != 2 {
		t.Errorf("Set: %s", SquaresToString(b))
	}
	if b.LSB() != d5 {
		t.Errorf("LSB() = %s; want d5", b.LSB())
	}

	sq, rest := b.PopLSB()
	if sq != d5 || rest != e4.Mask() {
		t.Errorf("PopLSB() = %s, %s; want d5, e4", sq, SquaresToString(rest))
	}

	b = b.Clear(d5)
	if b.Has(d5) || b != e4.Mask() {
		t.Errorf("Clear: %s", SquaresToString(b))
	}
}

func TestBitboardSquares(t *testing.T) {
	b := SquareAt(7, 7).Mask() | SquareAt(0, 0).Mask() | SquareAt(4, 3).Mask()

	want := []Square{SquareAt(0, 0), SquareAt(4, 3), SquareAt(7, 7)}
	if diff := cmp.Diff(want, b.Squares()); diff != "" {
		t.Errorf("Squares() mismatch (-want +got):\n%s", diff)
	}

	if got := SquaresToString(b); got != "a8e5h1" {
		t.Errorf("SquaresToString() = %q; want \"a8e5h1\"", got)
	}
	if got := SquaresToString(0); got != "-" {
		t.Errorf("SquaresToString(0) = %q; want \"-\"", got)
	}
	if got := Bitboard(0).Squares(); len(got) != 0 {
		t.Errorf("empty Squares() = %v", got)
	}
}
