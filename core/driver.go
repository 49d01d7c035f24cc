package core

import (
	"fmt"
	"os"
	"strings"
)

// Driver parses programs in one dialect under fixed options. The strict and
// extended packages each provide one.
type Driver interface {
	ParseString(filename, text string) (*Program, error)
	ParseFile(filename string) (*Program, error)
}

// Parse runs the grammar for dialect d over text. filename is only used in
// error messages and may be empty. opts may be nil for an unrestricted parse.
//
// Every failure, whether the text is malformed or the level forbids what it
// says, is returned as a *SyntaxError.
func Parse(d *Dialect, filename, text string, opts *Options) (*Program, error) {
	s := newParseState(filename, text, NewValidator(opts))
	g := buildGrammar(d, s)

	r, err := g.ParseString(filename, text)
	if s.rejection != nil {
		return nil, s.rejection
	}
	if err != nil {
		return nil, s.fromPsec(err)
	}

	res, ok := r.(*parsed)
	if !ok {
		return nil, s.errorAt(s.pos(1, 0), "can't happen: program rule returned %T", r)
	}
	if res.end.Offset < len(text) {
		return nil, s.errorAt(res.end, "expected end of line before %q", s.rest(res.end.Offset))
	}
	return res.prog, nil
}

// rest is the remainder of the line starting at offset, for error messages.
func (s *parseState) rest(offset int) string {
	line := s.source[offset:]
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// ParseFile reads filename and parses it with dialect d.
func ParseFile(d *Dialect, filename string, opts *Options) (*Program, error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Parse(d, filename, string(text), opts)
}
