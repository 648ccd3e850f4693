package engine

import (
	"fmt"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
)

// Generator produces destination masks for the pieces on a board.
// A Generator with a cache memoises opponent attack sets per position;
// the zero value computes them on every query.
type Generator struct {
	cache hashing.Cache
}

// NewGenerator returns a generator backed by the given cache (may be nil).
func NewGenerator(cache hashing.Cache) *Generator {
	return &Generator{cache: cache}
}

// defaultGenerator serves the package-level functions.
var defaultGenerator = &Generator{}

// AllowedMoves returns the destinations of the piece at (col, row).
// The square must hold a piece of the given colour; anything else is a
// caller error and panics.
func AllowedMoves(board *chess.Board, col, row int, colour chess.Colour) chess.Bitboard {
	return defaultGenerator.AllowedMoves(board, col, row, colour)
}

// IsLegalMove reports whether the piece on from may move to to.
func IsLegalMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	return defaultGenerator.IsLegalMove(board, from, to, colour)
}

// AllMoves returns the union of the destinations of every piece of the colour.
func AllMoves(board *chess.Board, colour chess.Colour) chess.Bitboard {
	return defaultGenerator.AllMoves(board, colour)
}

// AttackedSquares returns every square attacked by the given colour.
func AttackedSquares(board *chess.Board, by chess.Colour) chess.Bitboard {
	return defaultGenerator.AttackedSquares(board, by)
}

// AllowedMoves returns the destinations of the piece at (col, row).
func (g *Generator) AllowedMoves(board *chess.Board, col, row int, colour chess.Colour) chess.Bitboard {
	sq := chess.SquareAt(col, row)
	piece := board.PieceAt(sq)
	if piece == chess.Empty {
		panic(fmt.Sprintf("engine: no piece on %s", sq))
	}
	if chess.ExtractColour(piece) != colour {
		panic(fmt.Sprintf("engine: %s on %s is not %s", chess.ColouredPieceName(piece), sq, colour))
	}
	return g.pieceMoves(board, sq, piece)
}

// IsLegalMove reports whether the piece on from may move to to. It returns
// false when from is empty or holds a piece of the other colour.
func (g *Generator) IsLegalMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	piece := board.PieceAt(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != colour {
		return false
	}
	return g.pieceMoves(board, from, piece).Has(to)
}

// AllMoves returns the union of the destinations of every piece of the colour.
func (g *Generator) AllMoves(board *chess.Board, colour chess.Colour) chess.Bitboard {
	var moves chess.Bitboard
	for own := board.Occupancy(colour); own != 0; {
		var sq chess.Square
		sq, own = own.PopLSB()
		moves |= g.pieceMoves(board, sq, board.PieceAt(sq))
	}
	return moves
}

// MovablePieces returns the squares of the colour's pieces that have at
// least one destination.
func (g *Generator) MovablePieces(board *chess.Board, colour chess.Colour) chess.Bitboard {
	var movable chess.Bitboard
	for own := board.Occupancy(colour); own != 0; {
		var sq chess.Square
		sq, own = own.PopLSB()
		if g.pieceMoves(board, sq, board.PieceAt(sq)) != 0 {
			movable = movable.Set(sq)
		}
	}
	return movable
}

// AttackedSquares returns every square attacked by the given colour:
// pawn diagonals, knight jumps, king neighbours and slider rays up to and
// including the first blocker. Rays pass through the defending king so it
// cannot retreat along a line it is attacked on.
func (g *Generator) AttackedSquares(board *chess.Board, by chess.Colour) chess.Bitboard {
	if g.cache == nil {
		return attackedSquares(board, by)
	}
	fingerprint := hashing.Fingerprint(board)
	if attacks, ok := g.cache.Get(fingerprint, by); ok {
		return attacks
	}
	attacks := attackedSquares(board, by)
	g.cache.Put(fingerprint, by, attacks)
	return attacks
}

// pieceMoves dispatches to the generator of the piece's kind.
func (g *Generator) pieceMoves(board *chess.Board, sq chess.Square, piece chess.Piece) chess.Bitboard {
	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, sq, colour)
	case chess.Knight:
		return knightMoves(board, sq, colour)
	case chess.Bishop:
		return bishopMoves(board, sq, colour)
	case chess.Rook:
		return rookMoves(board, sq, colour)
	case chess.Queen:
		return queenMoves(board, sq, colour)
	case chess.King:
		return g.kingMoves(board, sq, colour)
	}
	return 0
}

// kingMoves returns the king's neighbours and castling destinations,
// minus own pieces and every square the opponent attacks.
func (g *Generator) kingMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	attacked := g.AttackedSquares(board, colour.Opposite())
	moves := kingAttacks(sq) | castlingMoves(board, sq, colour, attacked)
	return moves &^ board.Occupancy(colour) &^ attacked
}

// attackedSquares computes the attack set of one colour from scratch.
func attackedSquares(board *chess.Board, by chess.Colour) chess.Bitboard {
	occupied := board.OccupancyAll() &^ board.PieceMask(by.Opposite(), chess.King)

	var attacks chess.Bitboard
	for own := board.Occupancy(by); own != 0; {
		var sq chess.Square
		sq, own = own.PopLSB()
		switch chess.ExtractPiece(board.PieceAt(sq)) {
		case chess.Pawn:
			attacks |= pawnAttacks(sq, by)
		case chess.Knight:
			attacks |= knightAttacks(sq)
		case chess.Bishop:
			attacks |= bishopAttacks(sq, occupied)
		case chess.Rook:
			attacks |= rookAttacks(sq, occupied)
		case chess.Queen:
			attacks |= bishopAttacks(sq, occupied) | rookAttacks(sq, occupied)
		case chess.King:
			attacks |= kingAttacks(sq)
		}
	}
	return attacks
}
