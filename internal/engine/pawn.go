package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// pawnStartRow returns the row from which a pawn may advance two squares.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// enPassantRow returns the row a pawn must stand on to capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// promotionRow returns the farthest row for a pawn of the colour.
func promotionRow(colour chess.Colour) int {
	return chess.HomeRow(colour.Opposite())
}

// pawnAttacks returns the two diagonal squares ahead of a pawn.
func pawnAttacks(sq chess.Square, colour chess.Colour) chess.Bitboard {
	dir := chess.ColourOffset(colour)
	return stepTargets(sq, [][2]int{{-1, dir}, {1, dir}})
}

// pawnMoves returns single and double pushes onto empty squares, diagonal
// captures of opposing pieces and en-passant captures.
func pawnMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	dir := chess.ColourOffset(colour)
	col, row := sq.Col(), sq.Row()
	next := row + dir
	if !onBoard(col, next) {
		return 0
	}

	all := board.OccupancyAll()
	var moves chess.Bitboard

	one := chess.SquareAt(col, next)
	if !all.Has(one) {
		moves = moves.Set(one)
		if row == pawnStartRow(colour) {
			two := chess.SquareAt(col, next+dir)
			if !all.Has(two) {
				moves = moves.Set(two)
			}
		}
	}

	captures := board.Occupancy(colour.Opposite())
	if row == enPassantRow(colour) {
		captures |= board.EnPassant
	}
	return moves | pawnAttacks(sq, colour)&captures
}

// capturedEnPassant returns the square of the pawn taken by an en-passant
// capture: beside the mover's origin, on the destination column.
func capturedEnPassant(move chess.Move) chess.Square {
	return chess.SquareAt(int(move.ToCol), int(move.FromRow))
}

// isDoublePush reports whether a pawn move advances two rows.
func isDoublePush(move chess.Move) bool {
	return move.FromCol == move.ToCol && abs(int(move.ToRow)-int(move.FromRow)) == 2
}

// isDiagonal reports whether a move changes column by one.
func isDiagonal(move chess.Move) bool {
	return abs(int(move.ToCol)-int(move.FromCol)) == 1
}
