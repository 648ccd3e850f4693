package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
)

// discardLogger is used when no logger is configured.
var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// MovePiece applies a move to the board in place and returns the coloured
// piece that moved and the coloured piece captured (Empty if none).
// The source square must hold a piece; the move is not checked for
// legality and there is no rollback.
func MovePiece(board *chess.Board, move chess.Move) (moved, captured chess.Piece) {
	return movePiece(board, move, discardLogger)
}

// movePiece implements MovePiece, logging notable transitions at debug level.
func movePiece(board *chess.Board, move chess.Move, log logrus.FieldLogger) (moved, captured chess.Piece) {
	board.EnPassant = 0

	from, to := move.From(), move.To()
	moved = board.PieceAt(from)
	if moved == chess.Empty {
		panic(fmt.Sprintf("engine: move %s starts on empty square %s", NotationOf(move), from))
	}
	captured = board.PieceAt(to)

	board.ClearSquares(from.Mask() | to.Mask())
	board.Place(to, moved)

	colour, kind := chess.ExtractColour(moved), chess.ExtractPiece(moved)
	entry := log.WithFields(logrus.Fields{"move": NotationOf(move), "piece": chess.ColouredPieceName(moved)})

	switch kind {
	case chess.Pawn:
		if isDoublePush(move) {
			mid := chess.SquareAt(int(move.FromCol), (int(move.FromRow)+int(move.ToRow))/2)
			board.EnPassant = mid.Mask()
		}

		if captured == chess.Empty && isDiagonal(move) {
			victim := capturedEnPassant(move)
			if pawn := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn); board.PieceAt(victim) == pawn {
				captured = pawn
				board.ClearSquares(victim.Mask())
				entry.WithField("square", victim.String()).Debug("en passant capture")
			}
		}

		if int(move.ToRow) == promotionRow(colour) {
			board.Place(to, chess.MakeColouredPiece(colour, chess.Queen))
			entry.Debug("pawn promoted to queen")
		}

	case chess.King:
		if isCastle(move) {
			rookFrom, rookTo := castlingRook(move)
			if rook := board.PieceAt(rookFrom); chess.ExtractPiece(rook) == chess.Rook {
				board.Place(rookFrom, chess.Empty)
				board.Place(rookTo, rook)
				entry.WithField("rook", rookFrom.String()+rookTo.String()).Debug("castling rook relocated")
			}
		}
	}

	if lost := revokedRights(move, moved, captured) & board.Castling; lost != chess.NoCastling {
		board.Castling &^= lost
		entry.WithField("revoked", lost.String()).Debug("castling rights revoked")
	}

	if captured != chess.Empty {
		entry.WithField("captured", chess.ColouredPieceName(captured)).Debug("capture")
	}
	return moved, captured
}
