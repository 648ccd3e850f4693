package engine

import "github.com/lgbarn/bitboard-chess-go/internal/chess"

// Direction offsets as (column, row) steps.
var (
	straightDirs = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalDirs = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	knightJumps  = [][2]int{{-1, -2}, {1, -2}, {-2, -1}, {2, -1}, {-2, 1}, {2, 1}, {-1, 2}, {1, 2}}
	kingSteps    = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// onBoard reports whether (col, row) lies on the board.
func onBoard(col, row int) bool {
	return col >= 0 && col < chess.BoardSize && row >= 0 && row < chess.BoardSize
}

// stepTargets returns every square reachable with one of the offsets,
// dropping offsets that would leave the board in either axis.
func stepTargets(sq chess.Square, offsets [][2]int) chess.Bitboard {
	var targets chess.Bitboard
	for _, o := range offsets {
		col, row := sq.Col()+o[0], sq.Row()+o[1]
		if onBoard(col, row) {
			targets = targets.Set(chess.SquareAt(col, row))
		}
	}
	return targets
}

// rayAttacks walks each direction one square at a time until the edge or
// the first occupied square, which is included whatever its colour.
func rayAttacks(sq chess.Square, occupied chess.Bitboard, dirs [][2]int) chess.Bitboard {
	var targets chess.Bitboard
	for _, d := range dirs {
		col, row := sq.Col()+d[0], sq.Row()+d[1]
		for step := 1; step < chess.BoardSize && onBoard(col, row); step++ {
			target := chess.SquareAt(col, row)
			targets = targets.Set(target)
			if occupied.Has(target) {
				break
			}
			col += d[0]
			row += d[1]
		}
	}
	return targets
}

// knightAttacks returns the eight L-shaped targets of a knight, edge-masked.
func knightAttacks(sq chess.Square) chess.Bitboard {
	return stepTargets(sq, knightJumps)
}

// kingAttacks returns the squares adjacent to the king, edge-masked.
func kingAttacks(sq chess.Square) chess.Bitboard {
	return stepTargets(sq, kingSteps)
}

// rookAttacks returns the four straight rays from sq.
func rookAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return rayAttacks(sq, occupied, straightDirs)
}

// bishopAttacks returns the four diagonal rays from sq.
func bishopAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return rayAttacks(sq, occupied, diagonalDirs)
}

// knightMoves returns the knight's destinations, excluding own pieces.
func knightMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	return knightAttacks(sq) &^ board.Occupancy(colour)
}

// rookMoves returns the rook's destinations. A ray stops at the first
// occupied square and keeps it only when it holds an opposing piece.
func rookMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	return rookAttacks(sq, board.OccupancyAll()) &^ board.Occupancy(colour)
}

// bishopMoves returns the bishop's destinations with the same ray rule as rooks.
func bishopMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	return bishopAttacks(sq, board.OccupancyAll()) &^ board.Occupancy(colour)
}

// queenMoves is the union of the rook and bishop destinations.
func queenMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.Bitboard {
	return rookMoves(board, sq, colour) | bishopMoves(board, sq, colour)
}
