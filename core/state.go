package core

import (
	"fmt"

	"github.com/shepheb/psec"
)

// parseState is everything one parse needs beyond the grammar itself. psec
// actions carry no user state, so each parse builds its own grammar whose
// actions close over a fresh parseState.
type parseState struct {
	filename  string
	source    string
	validator *Validator

	// Byte offset of the first character of each line.
	lineStarts []int

	// The first validator rejection. It wins over whatever psec reports,
	// since psec only knows that nothing matched.
	rejection *SyntaxError
}

func newParseState(filename, source string, v *Validator) *parseState {
	s := &parseState{
		filename:   filename,
		source:     source,
		validator:  v,
		lineStarts: []int{0},
	}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// pos converts a psec line (1-based) and column (0-based) into a Position.
func (s *parseState) pos(line, col int) Position {
	if line < 1 {
		line = 1
	}
	if line > len(s.lineStarts) {
		line = len(s.lineStarts)
	}
	offset := s.lineStarts[line-1] + col
	if offset > len(s.source) {
		offset = len(s.source)
	}
	return Position{Line: line, Column: col + 1, Offset: offset}
}

// at converts an action location.
func (s *parseState) at(loc *psec.Loc) Position {
	if loc == nil {
		return s.pos(1, 0)
	}
	return s.pos(loc.Line, loc.Col)
}

func (s *parseState) errorAt(p Position, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf(msg, args...),
		Filename: s.filename,
		Line:     p.Line,
		Column:   p.Column,
		Offset:   p.Offset,
	}
}

// reject records a validator rejection at loc and returns it, so actions can
// hand it straight back to psec.
func (s *parseState) reject(loc *psec.Loc, msg string, args ...interface{}) error {
	err := s.errorAt(s.at(loc), msg, args...)
	if s.rejection == nil {
		s.rejection = err
	}
	return err
}
