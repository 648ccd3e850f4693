package chess

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// MoveNotationLen is the length of a move in algebraic notation ("e2e4").
const MoveNotationLen = 4

// Move is an immutable source/destination pair of (column, row) coordinates.
// Construction does no validation; ParseMove validates notation.
type Move struct {
	FromCol uint8
	FromRow uint8
	ToCol   uint8
	ToRow   uint8
}

// NewMove creates a move from (column, row) pairs.
func NewMove(fromCol, fromRow, toCol, toRow int) Move {
	return Move{
		FromCol: uint8(fromCol),
		FromRow: uint8(fromRow),
		ToCol:   uint8(toCol),
		ToRow:   uint8(toRow),
	}
}

// NewMoveFromSquares creates a move between two board squares.
func NewMoveFromSquares(from, to Square) Move {
	return NewMove(from.Col(), from.Row(), to.Col(), to.Row())
}

// From returns the source square.
func (m Move) From() Square {
	return SquareAt(int(m.FromCol), int(m.FromRow))
}

// To returns the destination square.
func (m Move) To() Square {
	return SquareAt(int(m.ToCol), int(m.ToRow))
}

// Mirror reflects both rows across the board's horizontal centre line.
// Notation rows count up from rank 1, board rows count down from rank 8,
// so Mirror converts between the two.
func (m Move) Mirror() Move {
	last := uint8(BoardSize - 1)
	return Move{
		FromCol: m.FromCol,
		FromRow: last - m.FromRow,
		ToCol:   m.ToCol,
		ToRow:   last - m.ToRow,
	}
}

// ParseMove converts algebraic notation such as "a2a4" to a move.
// The rank digit d becomes row d-1: "a2a4" is (0,1) -> (0,3).
func ParseMove(notation string) (Move, error) {
	if len(notation) != MoveNotationLen {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveNotation,
			Expected: fmt.Sprintf("%d characters", MoveNotationLen),
			Got:      fmt.Sprintf("%q", notation),
		}
	}

	var coords [MoveNotationLen]uint8
	for i := 0; i < MoveNotationLen; i++ {
		c := notation[i]
		base, last, what := byte(ColBase), byte(LastCol), "file a-h"
		if i%2 == 1 {
			base, last, what = RankBase, LastRank, "rank 1-8"
		}
		if c < base || c > last {
			return Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidMoveNotation,
				Column:   i + 1,
				Expected: what,
				Got:      fmt.Sprintf("%q", c),
			}
		}
		coords[i] = c - base
	}

	return Move{
		FromCol: coords[0],
		FromRow: coords[1],
		ToCol:   coords[2],
		ToRow:   coords[3],
	}, nil
}

// String returns the algebraic notation of the move; the inverse of ParseMove.
func (m Move) String() string {
	return string([]byte{
		ColBase + m.FromCol,
		RankBase + m.FromRow,
		ColBase + m.ToCol,
		RankBase + m.ToRow,
	})
}
