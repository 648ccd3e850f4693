package chess

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// CastlingRights is a set of the four castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// KingsideRight returns the kingside castling flag for a colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside castling flag for a colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String returns the FEN castling field for the rights, "-" when empty.
func (c CastlingRights) String() string {
	var out []byte
	for _, f := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(f.right) {
			out = append(out, f.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// Board holds one occupancy mask per (colour, piece kind) pair, the
// en-passant target and the castling rights. The twelve masks are kept
// pairwise disjoint.
type Board struct {
	// Pieces[colour][kind-Pawn] is the set of squares holding that piece.
	Pieces [2][NumPieceKinds]Bitboard

	// Square a pawn may capture onto en passant this ply; at most one bit.
	EnPassant Bitboard

	Castling CastlingRights
}

// NewBoard creates a new empty board with every castling right available.
func NewBoard() *Board {
	return &Board{Castling: AllCastling}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{Castling: AllCastling}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Place(SquareAt(col, 0), B(backRank[col]))
		b.Place(SquareAt(col, 1), B(Pawn))
		b.Place(SquareAt(col, 6), W(Pawn))
		b.Place(SquareAt(col, 7), W(backRank[col]))
	}
}

// PieceMask returns the occupancy mask of one piece kind of one colour.
func (b *Board) PieceMask(colour Colour, kind Piece) Bitboard {
	return b.Pieces[colour][kind-Pawn]
}

// PieceAt returns the coloured piece on the square, or Empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.PieceAtMask(sq.Mask())
}

// PieceAtMask returns the first coloured piece whose mask intersects the
// given mask, or Empty. Callers pass a single-bit mask.
func (b *Board) PieceAtMask(mask Bitboard) Piece {
	for _, colour := range [...]Colour{Black, White} {
		for i, bb := range b.Pieces[colour] {
			if bb&mask != 0 {
				return MakeColouredPiece(colour, PieceKinds[i])
			}
		}
	}
	return Empty
}

// Get returns the coloured piece at (col, row), or Empty.
func (b *Board) Get(col, row int) Piece {
	return b.PieceAt(SquareAt(col, row))
}

// Occupancy returns every square holding a piece of the colour.
func (b *Board) Occupancy(colour Colour) Bitboard {
	var occ Bitboard
	for _, bb := range b.Pieces[colour] {
		occ |= bb
	}
	return occ
}

// OccupancyAll returns every occupied square.
func (b *Board) OccupancyAll() Bitboard {
	return b.Occupancy(White) | b.Occupancy(Black)
}

// Place puts a coloured piece on the square after clearing it.
// Placing Empty only clears the square.
func (b *Board) Place(sq Square, piece Piece) {
	b.ClearSquares(sq.Mask())
	if piece == Empty {
		return
	}
	colour, kind := ExtractColour(piece), ExtractPiece(piece)
	b.Pieces[colour][kind-Pawn] |= sq.Mask()
}

// ClearSquares removes every square of the mask from all twelve masks.
func (b *Board) ClearSquares(mask Bitboard) {
	for colour := range b.Pieces {
		for i := range b.Pieces[colour] {
			b.Pieces[colour][i] &^= mask
		}
	}
}

// MaterialBalance sums piece values, white positive and black negative.
func (b *Board) MaterialBalance() int {
	points := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		piece := b.PieceAt(sq)
		if piece == Empty {
			continue
		}
		if ExtractColour(piece) == White {
			points += piece.Value()
		} else {
			points -= piece.Value()
		}
	}
	return points
}

// Validate checks that no square holds two pieces and that at most one
// en-passant square is set.
func (b *Board) Validate() error {
	var seen Bitboard
	for colour := range b.Pieces {
		for i, bb := range b.Pieces[colour] {
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("%s %s overlaps another piece on %s: %w",
					Colour(colour), PieceKinds[i], SquaresToString(overlap), errors.ErrInvalidBoard)
			}
			seen |= bb
		}
	}
	if b.EnPassant.Count() > 1 {
		return fmt.Errorf("en passant mask %s has more than one square: %w",
			SquaresToString(b.EnPassant), errors.ErrInvalidBoard)
	}
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
