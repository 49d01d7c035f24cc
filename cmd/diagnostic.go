package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sixlettervariables/hrm-grammar/core"
)

var (
	posColor   = color.New(color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// report prints err against the program text it came from. Syntax errors get
// the offending line and a caret under the column.
func report(w io.Writer, src source, err error) error {
	var serr *core.SyntaxError
	if !errors.As(err, &serr) {
		return err
	}

	posColor.Fprintf(w, "%s:%d:%d: ", src.name, serr.Line, serr.Column)
	errColor.Fprint(w, "error: ")
	fmt.Fprintln(w, serr.Message)

	line, ok := sourceLine(src.text, serr.Line)
	if !ok {
		return errReported
	}
	fmt.Fprintln(w, line)
	fmt.Fprint(w, caretIndent(line, serr.Column))
	caretColor.Fprintln(w, "^")
	return errReported
}

// sourceLine returns the 1-based line n of text without its terminator.
func sourceLine(text string, n int) (string, bool) {
	lines := strings.Split(text, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// caretIndent pads up to column, keeping tabs so the caret lines up.
func caretIndent(line string, column int) string {
	var b strings.Builder
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
