package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
)

// Game wraps a board with the side to move, move counters and the running
// material score. It is meant for a single owner; applying a move is not
// safe for concurrent use.
type Game struct {
	Board *chess.Board

	// Side to move.
	Turn chess.Colour

	// Material white is ahead by: the starting balance adjusted by every
	// capture since.
	Points int

	// Fullmove number, starting at 1 and incremented after Black's move.
	Fullmove uint

	// Half-moves since the last clock reset (see ClockPolicy).
	HalfmoveClock uint

	// Plies applied through this Game.
	Ply int

	clockPolicy ClockPolicy
	gen         *Generator
	cache       *hashing.AttackCache
	log         logrus.FieldLogger
}

// NewGame creates a game from a six-field FEN string.
func NewGame(fen string, opts ...Option) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Board:         pos.Board,
		Turn:          pos.ToMove,
		Points:        pos.Board.MaterialBalance(),
		Fullmove:      pos.Fullmove,
		HalfmoveClock: pos.HalfmoveClock,
		gen:           defaultGenerator,
		log:           discardLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// MustNewGame is like NewGame but panics if the FEN cannot be parsed.
// A malformed FEN here is a caller error.
func MustNewGame(fen string, opts ...Option) *Game {
	g, err := NewGame(fen, opts...)
	if err != nil {
		panic(fmt.Sprintf("engine: NewGame(%q): %v", fen, err))
	}
	return g
}

// NewInitialGame creates a game at the standard starting position.
func NewInitialGame(opts ...Option) *Game {
	return MustNewGame(InitialFEN, opts...)
}

// PieceAt returns the coloured piece on the square, or Empty.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.Board.PieceAt(sq)
}

// MaterialBalance returns the board's material balance from white's view.
func (g *Game) MaterialBalance() int {
	return g.Board.MaterialBalance()
}

// AllowedMoves returns the destinations of the piece at (col, row), which
// must belong to colour.
func (g *Game) AllowedMoves(col, row int, colour chess.Colour) chess.Bitboard {
	return g.gen.AllowedMoves(g.Board, col, row, colour)
}

// IsLegalMove reports whether the piece on from may move to to for colour.
func (g *Game) IsLegalMove(from, to chess.Square, colour chess.Colour) bool {
	return g.gen.IsLegalMove(g.Board, from, to, colour)
}

// AllMoves returns the union of destinations of every piece of colour.
func (g *Game) AllMoves(colour chess.Colour) chess.Bitboard {
	return g.gen.AllMoves(g.Board, colour)
}

// MovablePieces returns the squares of colour's pieces that can move.
func (g *Game) MovablePieces(colour chess.Colour) chess.Bitboard {
	return g.gen.MovablePieces(g.Board, colour)
}

// ApplyMove applies a move that the caller has already validated and
// updates the score, clocks and turn. It returns the coloured piece that
// moved and the coloured piece captured (Empty if none).
func (g *Game) ApplyMove(move chess.Move) (moved, captured chess.Piece) {
	moved, captured = movePiece(g.Board, move, g.log)

	if captured != chess.Empty {
		if g.Turn == chess.White {
			g.Points += captured.Value()
		} else {
			g.Points -= captured.Value()
		}
	}

	pawnMove := chess.ExtractPiece(moved) == chess.Pawn
	if g.clockPolicy.resets(pawnMove, captured != chess.Empty) {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}

	g.Turn = g.Turn.Opposite()
	if g.Turn == chess.White {
		g.Fullmove++
	}
	g.Ply++

	if g.cache != nil {
		g.cache.Reset()
	}

	g.log.WithFields(logrus.Fields{
		"ply":    g.Ply,
		"move":   NotationOf(move),
		"points": g.Points,
		"clock":  g.HalfmoveClock,
	}).Debug("move applied")

	return moved, captured
}

// TryMove applies the move if it is legal for the side to move and
// returns a *errors.GameError wrapping errors.ErrIllegalMove otherwise.
func (g *Game) TryMove(move chess.Move) (moved, captured chess.Piece, err error) {
	if !g.IsLegalMove(move.From(), move.To(), g.Turn) {
		return chess.Empty, chess.Empty, &errors.GameError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   g.Ply + 1,
			MoveText: NotationOf(move),
			FEN:      g.ExportPosition(),
		}
	}
	moved, captured = g.ApplyMove(move)
	return moved, captured, nil
}

// ExportPosition returns the position as a six-field FEN string.
func (g *Game) ExportPosition() string {
	return PositionToFEN(g.Board, g.Turn, g.HalfmoveClock, g.Fullmove)
}

// MoveFromNotation parses algebraic notation such as "e2e4" into a move in
// board coordinates, where rank 8 is row 0.
func MoveFromNotation(notation string) (chess.Move, error) {
	m, err := chess.ParseMove(notation)
	if err != nil {
		return chess.Move{}, err
	}
	return m.Mirror(), nil
}

// NotationOf returns the algebraic notation of a move in board coordinates.
func NotationOf(move chess.Move) string {
	return move.Mirror().String()
}
