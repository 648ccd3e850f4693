// Package cli implements the bitchess command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/output"
)

// Version is reported by --version.
const Version = "0.1.0"

// app carries the state shared by every command of one invocation.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	closers []io.Closer
}

// Root returns the bitchess root command.
func Root() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bitchess",
		Short: "Inspect chess positions and play moves on a bitboard engine",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.StringP("config", "c", "", "Configuration file (default: XDG config dir)")
	flags.String("log-level", "", "Log level (panic, fatal, error, warning, info, debug, trace)")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.StringP("output", "o", "", "Write results to this file instead of stdout")
	flags.Bool("append", false, "Append to the output file instead of truncating it")
	flags.StringP("format", "f", "", "Output format (text, json)")
	flags.Bool("unicode", false, "Draw pieces with chess symbols")
	flags.String("clock-policy", "", "Halfmove clock policy (pawn-or-capture, pawn-only)")
	flags.Int("cache", -1, "Attack cache capacity (0 disables)")

	root.Version = Version
	root.SetVersionTemplate("bitchess {{.Version}}\n")

	// Register the various commands.
	root.AddCommand(Show(a))
	root.AddCommand(Moves(a))
	root.AddCommand(Apply(a))
	root.AddCommand(Play(a))
	root.AddCommand(Batch(a))

	return root
}

// setup loads the configuration, applies flag overrides and opens the
// output and log streams.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	b := config.NewConfigBuilderFrom(cfg).
		WithOutput(cmd.OutOrStdout()).
		WithLog(cmd.ErrOrStderr())

	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		b.WithLogLevel(level)
	}
	// If --trace flag is provided, set logging level to Trace.
	if flags.Changed("trace") {
		b.WithLogLevel(logrus.TraceLevel.String())
	}
	if flags.Changed("format") {
		name, _ := flags.GetString("format")
		format, err := config.ParseOutputFormat(name)
		if err != nil {
			return err
		}
		b.WithOutputFormat(format)
	}
	if flags.Changed("unicode") {
		unicode, _ := flags.GetBool("unicode")
		b.WithUnicode(unicode)
	}
	if flags.Changed("clock-policy") {
		policy, _ := flags.GetString("clock-policy")
		b.WithClockPolicy(policy)
	}
	if flags.Changed("cache") {
		capacity, _ := flags.GetInt("cache")
		b.WithAttackCache(capacity)
	}
	if flags.Changed("workers") {
		workers, _ := flags.GetInt("workers")
		b.WithWorkers(workers)
	}
	if flags.Changed("fail-fast") {
		failFast, _ := flags.GetBool("fail-fast")
		b.WithFailFast(failFast)
	}

	cfg = b.Build()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if path, _ := flags.GetString("log-file"); path != "" {
		file, err := a.open(path, true)
		if err != nil {
			return fmt.Errorf("creating log file %s: %w", path, err)
		}
		cfg.LogFile = file
	}
	if path, _ := flags.GetString("output"); path != "" {
		appendOutput, _ := flags.GetBool("append")
		file, err := a.open(path, appendOutput)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", path, err)
		}
		cfg.OutputFile = file
	}

	a.cfg = cfg
	a.log = newLogger(cfg)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// open creates or appends to a file that is closed when the command ends.
func (a *app) open(path string, appendTo bool) (*os.File, error) {
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(path, flag, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, file)
	return file, nil
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cfg.LogFile)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return log
}

// newGame parses fen with the configured engine options.
func (a *app) newGame(fen string) (*engine.Game, error) {
	return engine.NewGame(fen, a.cfg.Engine.GameOptions(a.log)...)
}

// writer returns the record writer for the configured output format.
func (a *app) writer() output.RecordWriter {
	return output.NewRecordWriter(a.cfg.OutputFile, a.cfg.Output)
}

// addFENFlag registers the --fen flag shared by the position commands.
func addFENFlag(cmd *cobra.Command) {
	cmd.Flags().String("fen", engine.InitialFEN, "Starting position in FEN")
}

func (a *app) gameFromFlag(cmd *cobra.Command) (*engine.Game, error) {
	fen, _ := cmd.Flags().GetString("fen")
	return a.newGame(fen)
}
