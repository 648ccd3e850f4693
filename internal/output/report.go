package output

import (
	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// PositionReport describes a game position in JSON format.
type PositionReport struct {
	FEN             string              `json:"fen"`
	Turn            string              `json:"turn"` // "white" or "black"
	Points          int                 `json:"points"`
	MaterialBalance int                 `json:"materialBalance"`
	HalfmoveClock   uint                `json:"halfmoveClock"`
	Fullmove        uint                `json:"fullmove"`
	Castling        string              `json:"castling"`
	EnPassant       string              `json:"enPassant,omitempty"`
	Moves           map[string][]string `json:"moves,omitempty"`
}

// NewPositionReport builds a report of the game's position. Moves holds
// the destinations of each movable piece of the side to move.
func NewPositionReport(g *engine.Game) *PositionReport {
	r := &PositionReport{
		FEN:             g.ExportPosition(),
		Turn:            colourName(g.Turn),
		Points:          g.Points,
		MaterialBalance: g.MaterialBalance(),
		HalfmoveClock:   g.HalfmoveClock,
		Fullmove:        g.Fullmove,
		Castling:        g.Board.Castling.String(),
		Moves:           make(map[string][]string),
	}
	if g.Board.EnPassant != 0 {
		r.EnPassant = chess.SquaresToString(g.Board.EnPassant)
	}
	for _, sq := range g.MovablePieces(g.Turn).Squares() {
		moves := g.AllowedMoves(sq.Col(), sq.Row(), g.Turn)
		for _, to := range moves.Squares() {
			r.Moves[sq.String()] = append(r.Moves[sq.String()], to.String())
		}
	}
	return r
}

// colourName returns the lowercase colour name used in JSON.
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// BatchRecord is the summary of one FEN line processed in batch mode.
type BatchRecord struct {
	Index        int    `json:"index"`
	Input        string `json:"input"`
	FEN          string `json:"fen,omitempty"`
	Balance      int    `json:"balance"`
	Movable      int    `json:"movable"`
	Destinations int    `json:"destinations"`
	Error        string `json:"error,omitempty"`
}

// NewBatchRecord summarises a game parsed from line index of a batch.
func NewBatchRecord(index int, input string, g *engine.Game) BatchRecord {
	rec := BatchRecord{
		Index:   index,
		Input:   input,
		FEN:     g.ExportPosition(),
		Balance: g.MaterialBalance(),
	}
	for _, sq := range g.MovablePieces(g.Turn).Squares() {
		rec.Movable++
		rec.Destinations += g.AllowedMoves(sq.Col(), sq.Row(), g.Turn).Count()
	}
	return rec
}

// FailedBatchRecord records a line that could not be processed.
func FailedBatchRecord(index int, input string, err error) BatchRecord {
	return BatchRecord{Index: index, Input: input, Error: err.Error()}
}
