package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// SyntaxError is the only error kind the parser produces. Malformed input and
// level policy rejections look the same to the caller, apart from the message.
type SyntaxError struct {
	Message  string
	Filename string
	Line     int
	Column   int
	Offset   int
}

func (e *SyntaxError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// Position returns where the error was detected.
func (e *SyntaxError) Position() Position {
	return Position{Line: e.Line, Column: e.Column, Offset: e.Offset}
}

// psec reports failures as "<file> line L col C: message", with a 0-based
// column.
var psecErrorRE = regexp.MustCompile(`(?s)^.*?line (\d+) col (\d+): (.*)$`)

// fromPsec converts an error returned by psec into a SyntaxError, recovering
// the position from its message when possible.
func (s *parseState) fromPsec(err error) *SyntaxError {
	m := psecErrorRE.FindStringSubmatch(err.Error())
	if m == nil {
		return s.errorAt(s.pos(1, 0), "%s", err.Error())
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	return s.errorAt(s.pos(line, col), "%s", m[3])
}
