package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/bitboard-chess-go/internal/chess"
	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/errors"
	"github.com/lgbarn/bitboard-chess-go/internal/output"
)

// Show returns the show command.
func Show(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a position as a diagram or JSON report",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.gameFromFlag(cmd)
			if err != nil {
				return err
			}
			w := a.writer()
			if err := w.WritePosition(g); err != nil {
				return err
			}
			return w.Close()
		},
	}
	addFENFlag(cmd)
	return cmd
}

// Moves returns the moves command.
func Moves(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves [square...]",
		Short: "List the allowed destinations of the side to move",
		Long: heredoc.Doc(`moves lists, for every piece of the side to move that can move,
			the squares it may move to. With square arguments only those pieces
			are listed; each square must hold a piece of the side to move.

			Pinned pieces are not filtered: only the king avoids attacked squares.
		`),
		Example: heredoc.Doc(`
			$ bitchess moves
			$ bitchess moves --fen "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1" e2
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.gameFromFlag(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if a.cfg.Output.Format == config.JSONFormat {
					w := a.writer()
					if err := w.WritePosition(g); err != nil {
						return err
					}
					return w.Close()
				}
				output.WriteMoves(a.cfg.OutputFile, g)
				return nil
			}

			for _, name := range args {
				sq, err := ownSquare(g, name)
				if err != nil {
					return err
				}
				output.WriteMovesFrom(a.cfg.OutputFile, g, sq)
			}
			return nil
		},
	}
	addFENFlag(cmd)
	return cmd
}

// ownSquare parses name and checks that it holds a piece of the side to move.
func ownSquare(g *engine.Game, name string) (chess.Square, error) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return 0, err
	}
	piece := g.PieceAt(sq)
	if piece == chess.Empty {
		return 0, fmt.Errorf("%s is empty: %w", name, errors.ErrInvalidSquare)
	}
	if chess.ExtractColour(piece) != g.Turn {
		return 0, fmt.Errorf("%s holds a %s piece but %s is to move: %w",
			name, chess.ExtractColour(piece), g.Turn, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// Apply returns the apply command.
func Apply(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply move...",
		Short: "Play a sequence of moves and print the resulting position",
		Long: heredoc.Doc(`apply plays moves given in coordinate notation, such as e2e4 or
			e1g1 for castling, from the starting position and prints the result.
			Each move must be allowed for the side to move. Pawns reaching the
			last rank become queens.
		`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.gameFromFlag(cmd)
			if err != nil {
				return err
			}
			if err := playMoves(a.log, g, args); err != nil {
				return err
			}
			w := a.writer()
			if err := w.WritePosition(g); err != nil {
				return err
			}
			return w.Close()
		},
	}
	addFENFlag(cmd)
	return cmd
}

// playMoves applies each notation in order, stopping at the first error.
func playMoves(log logrus.FieldLogger, g *engine.Game, notations []string) error {
	for _, text := range notations {
		move, err := engine.MoveFromNotation(text)
		if err != nil {
			return err
		}
		moved, captured, err := g.TryMove(move)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"move":     text,
			"piece":    chess.ColouredPieceName(moved),
			"captured": captured != chess.Empty,
		}).Trace("played")
	}
	return nil
}
