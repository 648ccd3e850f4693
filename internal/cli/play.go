package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/output"
)

var playHelp = heredoc.Doc(`
	Commands:
	  e2e4      play a move in coordinate notation
	  moves     list the allowed moves of the side to move
	  moves e2  list the allowed moves of one piece
	  board     print the position
	  fen       print the position as FEN
	  help      show this help
	  quit      leave the session
`)

// Play returns the interactive play command.
func Play(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play moves interactively from standard input",
		Long: heredoc.Doc(`play reads one command per line from standard input and applies
			moves to a single game. Illegal moves are reported and the game
			continues from the same position.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.gameFromFlag(cmd)
			if err != nil {
				return err
			}
			return a.session(g, cmd.InOrStdin(), a.cfg.OutputFile)
		},
	}
	addFENFlag(cmd)
	return cmd
}

// session runs the interactive loop until quit or end of input.
func (a *app) session(g *engine.Game, in io.Reader, out io.Writer) error {
	if err := output.WritePosition(out, g, a.cfg.Output); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", strings.ToLower(g.Turn.String()))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, playHelp)
		case "fen":
			fmt.Fprintln(out, g.ExportPosition())
		case "board":
			if err := output.WritePosition(out, g, a.cfg.Output); err != nil {
				return err
			}
		case "moves":
			if len(fields) == 1 {
				output.WriteMoves(out, g)
				continue
			}
			for _, name := range fields[1:] {
				sq, err := ownSquare(g, name)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				output.WriteMovesFrom(out, g, sq)
			}
		default:
			if err := playMoves(a.log, g, fields); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			if err := output.WritePosition(out, g, a.cfg.Output); err != nil {
				return err
			}
		}
	}
}
