// Package output provides position and batch result formatting as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// DefaultLineLength is the wrap column for move listings.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line unless the current one is empty.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 && !o.needsSpace {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// unicodeGlyphs maps FEN letters to chess symbols.
var unicodeGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// squareText returns the diagram cell for a coloured piece.
func squareText(piece chess.Piece, unicode bool) string {
	if piece == chess.Empty {
		return "."
	}
	letter := engine.ColouredPieceToSANLetter(piece)
	if unicode {
		return unicodeGlyphs[letter]
	}
	return string(letter)
}

// Diagram renders the board top rank first, one rank per line.
func Diagram(board *chess.Board, cfg *config.OutputConfig) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if cfg.Coordinates {
			fmt.Fprintf(&sb, "%c ", chess.LastRank-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(squareText(board.Get(col, row), cfg.Unicode))
		}
		sb.WriteByte('\n')
	}
	if cfg.Coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

// WritePosition prints the diagram followed by the FEN and the bookkeeping
// of a game.
func WritePosition(w io.Writer, g *engine.Game, cfg *config.OutputConfig) error {
	_, err := fmt.Fprintf(w, "%s\nFEN: %s\nTurn: %s  Points: %d  Halfmove: %d  Fullmove: %d\n",
		Diagram(g.Board, cfg), g.ExportPosition(), g.Turn, g.Points, g.HalfmoveClock, g.Fullmove)
	return err
}

// WriteMoves lists the destinations of every movable piece of the side to
// move, one piece per line, e.g. "e2: e3 e4". Long lines wrap at
// DefaultLineLength.
func WriteMoves(w io.Writer, g *engine.Game) {
	ow := NewOutputWriter(w, DefaultLineLength)
	for _, sq := range g.MovablePieces(g.Turn).Squares() {
		ow.Write(sq.String() + ":")
		for _, to := range g.AllowedMoves(sq.Col(), sq.Row(), g.Turn).Squares() {
			ow.Write(to.String())
		}
		ow.NewLine()
	}
}

// WriteMovesFrom lists the destinations of the piece on one square.
func WriteMovesFrom(w io.Writer, g *engine.Game, sq chess.Square) {
	ow := NewOutputWriter(w, DefaultLineLength)
	ow.Write(sq.String() + ":")
	for _, to := range g.AllowedMoves(sq.Col(), sq.Row(), g.Turn).Squares() {
		ow.Write(to.String())
	}
	ow.NewLine()
}
