package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/hashing"
	"github.com/lgbarn/bitboard-chess-go/internal/worker"
)

// SPIN is the spinner character set shown while a batch runs.
const SPIN = 14

// Batch returns the batch command.
func Batch(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch file",
		Short: "Summarise every FEN in a file in parallel",
		Long: heredoc.Doc(`batch reads one FEN per line from file, or standard input when
			file is "-". Blank lines and lines starting with # are skipped.

			For each position it reports the line number, the normalised FEN,
			the material balance, how many pieces of the side to move can move
			and how many destinations they have in total. Invalid lines are
			reported as errors without stopping the batch, unless --fail-fast
			is given: then the batch stops at the first invalid line, writes
			the records finished so far and exits with that line's error.
		`),
		Example: heredoc.Doc(`
			$ bitchess batch positions.fen
			$ bitchess batch --workers 8 --format json positions.fen
			$ bitchess batch --fail-fast positions.fen
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			items, err := worker.ReadItems(in)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			return a.runBatch(cmd.ErrOrStderr(), items)
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "Worker goroutines (0 uses every CPU)")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first invalid record")
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// runBatch processes items on a worker pool and writes the ordered records.
func (a *app) runBatch(progress io.Writer, items []worker.WorkItem) error {
	workers := a.cfg.Batch.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	// Workers share one attack cache; entries are keyed by position.
	opts := a.cfg.Engine.GameOptions(a.log)
	var shared *hashing.ThreadSafeAttackCache
	if capacity := a.cfg.Engine.AttackCacheCapacity; capacity > 0 {
		shared = hashing.NewThreadSafeAttackCache(capacity)
		opts = append(opts, engine.WithSharedAttackCache(shared))
	}

	pool := worker.NewPool(workers, a.cfg.Batch.BufferSize, worker.FENProcessor(a.log, opts...))

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(progress))
	s.Suffix = fmt.Sprintf(" processing %d positions", len(items))
	s.Start() // Start the ~working~ spinner.

	start := time.Now()
	results := worker.Run(pool, items, a.cfg.Batch.FailFast, func(done int) {
		a.log.WithField("done", done).Trace("record processed")
	})

	s.Stop() // Stop the ~working~ spinner.

	w := a.writer()
	failed := 0
	var firstErr error
	for _, res := range results {
		if res.Error != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("line %d: %w", res.Index, res.Error)
			}
		}
		if err := w.WriteRecord(res.Record); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"records": len(results),
		"failed":  failed,
		"workers": pool.NumWorkers(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("batch complete")

	if shared != nil {
		hits, misses := shared.Stats()
		a.log.WithFields(logrus.Fields{
			"entries": shared.Len(),
			"hits":    hits,
			"misses":  misses,
		}).Debug("attack cache")
	}

	if a.cfg.Batch.FailFast && firstErr != nil {
		return firstErr
	}
	return nil
}
