package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sixlettervariables/hrm-grammar/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in a catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if levelsFile == "" {
			return errors.New("no catalogue given, see --levels")
		}
		c, err := levels.Load(levelsFile)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, l := range c {
			n := l.Number
			if n == 0 {
				n = i + 1
			}
			floor := "-"
			if l.Floor != nil {
				floor = fmt.Sprintf("%dx%d", l.Floor.Rows, l.Floor.Columns)
			}
			commands := "any"
			if l.Commands != nil {
				commands = strings.Join(l.Commands, ",")
			}
			fmt.Fprintf(w, "%3d  %-28s  %-5s  %s%s\n", n, l.Name, floor, commands, capabilities(l.Comments, l.Labels, l.Dereferencing))
		}
		return nil
	},
}

func capabilities(comments, labels, deref bool) string {
	var caps []string
	if comments {
		caps = append(caps, "comments")
	}
	if labels {
		caps = append(caps, "labels")
	}
	if deref {
		caps = append(caps, "dereferencing")
	}
	if len(caps) == 0 {
		return ""
	}
	return " (" + strings.Join(caps, ", ") + ")"
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
