package chess

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Square is a board index in the range 0-63: column + row*8.
// Row 0 is the top rank of a FEN placement (rank 8).
type Square uint8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// SquareAt returns the square at the given column and row.
func SquareAt(col, row int) Square {
	return Square(col + row*BoardSize)
}

// Col returns the column (file) index of the square.
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Row returns the row index of the square.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Mask returns a bitboard with only this square set.
func (s Square) Mask() Bitboard {
	return Bitboard(1) << s
}

// String returns the two character square name, e.g. "e4".
func (s Square) String() string {
	if s >= NumSquares {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Col()), byte(LastRank - s.Row())})
}

// ParseSquare converts a square name such as "e3" to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Expected: "two characters",
			Got:      fmt.Sprintf("%q", name),
		}
	}
	col, row := name[0], name[1]
	if col < ColBase || col > LastCol {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", col),
		}
	}
	if row < RankBase || row > LastRank {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", row),
		}
	}
	return SquareAt(int(col-ColBase), int(LastRank-row)), nil
}

// Bitboard is a set of squares; bit i represents Square(i).
type Bitboard uint64

// CoordinatesToBitboard returns a mask holding the single square (col, row).
func CoordinatesToBitboard(col, row int) Bitboard {
	return SquareAt(col, row).Mask()
}

// BitboardToCoordinates returns the column and row of the lowest set square.
func BitboardToCoordinates(b Bitboard) (int, int) {
	sq := b.LSB()
	return sq.Col(), sq.Row()
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(s Square) bool { return b&s.Mask() != 0 }

// Set returns the set with the square added.
func (b Bitboard) Set(s Square) Bitboard { return b | s.Mask() }

// Clear returns the set with the square removed.
func (b Bitboard) Clear(s Square) Bitboard { return b &^ s.Mask() }

// Empty reports whether the set has no squares.
func (b Bitboard) Empty() bool { return b == 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest square in the set. The result is NumSquares for
// an empty set.
func (b Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the lowest square and the set without it.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	sq := b.LSB()
	return sq, b & (b - 1)
}

// Squares returns the squares of the set in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for b != 0 {
		var sq Square
		sq, b = b.PopLSB()
		squares = append(squares, sq)
	}
	return squares
}

// SquaresToString returns the names of all squares in the set, lowest
// index first, concatenated. An empty set yields "-".
func SquaresToString(b Bitboard) string {
	if b == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, sq := range b.Squares() {
		sb.WriteString(sq.String())
	}
	return sb.String()
}
