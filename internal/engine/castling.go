package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// Columns involved in castling.
const (
	kingHomeCol       = 4
	kingsideRookCol   = 7
	queensideRookCol  = 0
	kingsideKingCol   = 6
	queensideKingCol  = 2
	kingsideRookDest  = 5
	queensideRookDest = 3
)

// castlingSide describes one castling option on a given row.
type castlingSide struct {
	right   chess.CastlingRights
	rookCol int
	kingTo  int
	empty   []int // columns between king and rook
	transit []int // columns the king crosses or lands on
}

// castlingSides returns the kingside and queenside options of a colour.
func castlingSides(colour chess.Colour) [2]castlingSide {
	return [2]castlingSide{
		{
			right:   chess.KingsideRight(colour),
			rookCol: kingsideRookCol,
			kingTo:  kingsideKingCol,
			empty:   []int{5, 6},
			transit: []int{5, 6},
		},
		{
			right:   chess.QueensideRight(colour),
			rookCol: queensideRookCol,
			kingTo:  queensideKingCol,
			empty:   []int{1, 2, 3},
			transit: []int{3, 2},
		},
	}
}

// castlingMoves returns the castling destinations open to a king on sq.
// The right must be held, the king and rook must stand on their home
// squares, the squares between them must be empty and neither the king's
// square nor any square it crosses may be attacked.
func castlingMoves(board *chess.Board, sq chess.Square, colour chess.Colour, attacked chess.Bitboard) chess.Bitboard {
	row := chess.HomeRow(colour)
	if sq != chess.SquareAt(kingHomeCol, row) || attacked.Has(sq) {
		return 0
	}

	occupied := board.OccupancyAll()
	rooks := board.PieceMask(colour, chess.Rook)

	var moves chess.Bitboard
	for _, side := range castlingSides(colour) {
		if !board.Castling.Has(side.right) || !rooks.Has(chess.SquareAt(side.rookCol, row)) {
			continue
		}
		if !squaresClear(occupied, row, side.empty) || !squaresClear(attacked, row, side.transit) {
			continue
		}
		moves = moves.Set(chess.SquareAt(side.kingTo, row))
	}
	return moves
}

// squaresClear reports whether none of the columns on row are in the mask.
func squaresClear(mask chess.Bitboard, row int, cols []int) bool {
	for _, col := range cols {
		if mask.Has(chess.SquareAt(col, row)) {
			return false
		}
	}
	return true
}

// isCastle reports whether a king move is a two-column castling move
// from the home column.
func isCastle(move chess.Move) bool {
	return move.FromCol == kingHomeCol && move.FromRow == move.ToRow &&
		abs(int(move.ToCol)-int(move.FromCol)) == 2
}

// castlingRook returns the rook's origin and destination for a castling move.
func castlingRook(move chess.Move) (from, to chess.Square) {
	row := int(move.FromRow)
	if move.ToCol > move.FromCol {
		return chess.SquareAt(kingsideRookCol, row), chess.SquareAt(kingsideRookDest, row)
	}
	return chess.SquareAt(queensideRookCol, row), chess.SquareAt(queensideRookDest, row)
}

// rookCornerRight returns the castling right tied to a rook corner square,
// or NoCastling for any other square.
func rookCornerRight(sq chess.Square) chess.CastlingRights {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		row := chess.HomeRow(colour)
		switch sq {
		case chess.SquareAt(kingsideRookCol, row):
			return chess.KingsideRight(colour)
		case chess.SquareAt(queensideRookCol, row):
			return chess.QueensideRight(colour)
		}
	}
	return chess.NoCastling
}

// revokedRights returns the castling rights lost by a move: both rights
// of a king that moves, the right of a rook leaving its corner and the
// right of a rook captured on its corner.
func revokedRights(move chess.Move, moved, captured chess.Piece) chess.CastlingRights {
	var lost chess.CastlingRights
	colour := chess.ExtractColour(moved)
	switch chess.ExtractPiece(moved) {
	case chess.King:
		lost |= chess.KingsideRight(colour) | chess.QueensideRight(colour)
	case chess.Rook:
		if right := rookCornerRight(move.From()); right != chess.NoCastling &&
			int(move.FromRow) == chess.HomeRow(colour) {
			lost |= right
		}
	}
	if chess.ExtractPiece(captured) == chess.Rook {
		capturedColour := chess.ExtractColour(captured)
		if right := rookCornerRight(move.To()); right != chess.NoCastling &&
			int(move.ToRow) == chess.HomeRow(capturedColour) {
			lost |= right
		}
	}
	return lost
}
