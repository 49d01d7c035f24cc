package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sixlettervariables/hrm-grammar/core"
	"github.com/sixlettervariables/hrm-grammar/extended"
	"github.com/sixlettervariables/hrm-grammar/levels"
	"github.com/sixlettervariables/hrm-grammar/strict"
)

var (
	dialect       string
	levelsFile    string
	levelNumber   int
	validateTiles bool
	verbose       bool
)

// errReported marks a failure whose diagnostics were already printed.
var errReported = errors.New("errors reported")

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "hrm",
	Short: "Parse and check Human Resource Machine programs",
	Long: `hrm reads Human Resource Machine assembly, as exported from the game
or written by hand, and reports what it finds.

Dialects:
  strict    - upper-case keywords only, as the game writes them
  extended  - keywords in any case

A level catalogue (--levels) and a level number (--level) restrict the
program to the commands and capabilities that level offers.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := slog.LevelWarn
		if verbose {
			lvl = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

		if f, ok := cmd.ErrOrStderr().(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			color.NoColor = true
		}
	},
}

// Execute runs the hrm command tree.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dialect, "dialect", "d", "strict", "syntax dialect, strict or extended")
	rootCmd.PersistentFlags().StringVar(&levelsFile, "levels", "", "level catalogue (.json, .yaml or .toml)")
	rootCmd.PersistentFlags().IntVarP(&levelNumber, "level", "l", 0, "restrict programs to this level from the catalogue")
	rootCmd.PersistentFlags().BoolVar(&validateTiles, "validate-tiles", false, "reject tile numbers outside the level's floor")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// parseOptions builds the options selected by --levels and --level.
func parseOptions() (*core.Options, error) {
	if levelNumber == 0 {
		if validateTiles {
			return &core.Options{ValidateTiles: true}, nil
		}
		return nil, nil
	}
	if levelsFile == "" {
		return nil, fmt.Errorf("--level %d needs a catalogue, see --levels", levelNumber)
	}
	c, err := levels.Load(levelsFile)
	if err != nil {
		return nil, err
	}
	opts, err := c.Options(levelNumber, validateTiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", levelsFile, err)
	}
	logger.Debug("level selected", "catalogue", levelsFile, "level", levelNumber, "name", opts.Level.Name)
	return opts, nil
}

// newDriver returns the parser for --dialect.
func newDriver(opts *core.Options) (core.Driver, error) {
	var d core.Driver
	var lang *core.Dialect
	switch dialect {
	case "strict":
		d, lang = &strict.Driver{Options: opts}, strict.Dialect
	case "extended":
		d, lang = &extended.Driver{Options: opts}, extended.Dialect
	default:
		return nil, fmt.Errorf("unknown dialect %q, want strict or extended", dialect)
	}
	logger.Debug("dialect selected", "dialect", lang.Name)
	return d, nil
}

// source is one program named on the command line.
type source struct {
	name string
	text string
}

// readSources reads each named file, or standard input for "-" or no names.
func readSources(cmd *cobra.Command, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var srcs []source
	for _, name := range args {
		var b []byte
		var err error
		if name == "-" {
			name = "<stdin>"
			b, err = io.ReadAll(cmd.InOrStdin())
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		srcs = append(srcs, source{name: name, text: string(b)})
	}
	return srcs, nil
}
