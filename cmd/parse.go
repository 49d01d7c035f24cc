package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sixlettervariables/hrm-grammar/core"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]...",
	Short: "Print the syntax tree of programs",
	Long: `parse prints each program's statements with their source locations,
as JSON (the default) or YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		emit, err := newEmitter(cmd.OutOrStdout(), outputFormat)
		if err != nil {
			return err
		}
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
			if err := emit(prog); err != nil {
				return fmt.Errorf("writing %s: %w", src.name, err)
			}
		}
		return nil
	},
}

func newEmitter(w io.Writer, format string) (func(*core.Program) error, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return func(p *core.Program) error { return enc.Encode(p) }, nil
	case "yaml":
		n := 0
		return func(p *core.Program) error {
			if n++; n > 1 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q, want json or yaml", format)
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format, json or yaml")
	rootCmd.AddCommand(parseCmd)
}
