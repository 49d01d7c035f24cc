package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]...",
	Short: "Check programs and summarize them",
	Long: `check parses each program and prints a one-line summary. The first
program that does not parse is reported with its position and the command
exits with a failure status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseOptions()
		if err != nil {
			return err
		}
		d, err := newDriver(opts)
		if err != nil {
			return err
		}
		srcs, err := readSources(cmd, args)
		if err != nil {
			return err
		}

		for _, src := range srcs {
			start := time.Now()
			prog, err := d.ParseString(src.name, src.text)
			logger.Debug("parsed", "file", src.name, "dialect", dialect, "elapsed", time.Since(start))
			if err != nil {
				return report(cmd.ErrOrStderr(), src, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d statements, %d labels\n",
				src.name, len(prog.Statements), len(prog.Labels()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
