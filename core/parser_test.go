package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/shepheb/psec"
)

var testDialect = &Dialect{
	Name:     "test",
	Keyword:  psec.Literal,
	Reserved: ReservedExact,
}

func setup(input string, opts *Options) (*psec.Grammar, *parseState) {
	s := newParseState("test", input, NewValidator(opts))
	return buildGrammar(testDialect, s), s
}

func expectStatement(t *testing.T, rule, input string, opts *Options) Statement {
	t.Helper()
	g, _ := setup(input, opts)
	res, err := g.ParseStringWith("test", input, rule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmt, ok := res.(Statement)
	if !ok {
		t.Fatalf("expected a Statement, got %T", res)
	}
	return stmt
}

func expectOperand(t *testing.T, input string, expected Operand) {
	t.Helper()
	g, _ := setup(input, nil)
	res, err := g.ParseStringWith("test", input, "operand")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op, ok := res.(Operand); !ok || op != expected {
		t.Errorf("expected operand %#v, got %#v", expected, res)
	}
}

// expectRejection checks that the rule fails for input and that the failure
// was recorded as a rejection at the given column.
func expectRejection(t *testing.T, rule, input string, opts *Options, col int) {
	t.Helper()
	g, s := setup(input, opts)
	_, err := g.ParseStringWith("test", input, rule)
	if err == nil && s.rejection == nil {
		t.Fatalf("expected %q to be rejected", input)
	}
	if s.rejection == nil {
		t.Fatalf("expected a recorded rejection, got %v", err)
	}
	if s.rejection.Column != col {
		t.Errorf("expected rejection at column %d, got %d (%v)", col, s.rejection.Column, s.rejection)
	}
}

func TestOperands(t *testing.T) {
	expectOperand(t, "0", Operand{Type: Identifier, Name: "0"})
	expectOperand(t, "17", Operand{Type: Identifier, Name: "17"})
	expectOperand(t, "zero", Operand{Type: Identifier, Name: "zero"})
	expectOperand(t, "[4]", Operand{Type: IndirectIdentifier, Name: "4"})
	expectOperand(t, "[  4 ]", Operand{Type: IndirectIdentifier, Name: "4"})
	expectOperand(t, "[\n\t4\n]", Operand{Type: IndirectIdentifier, Name: "4"})
}

func TestOperandRejections(t *testing.T) {
	noDeref := &Options{Level: &Level{}}
	expectRejection(t, "operand", "[4]", noDeref, 1)

	small := &Options{Level: &Level{Dereferencing: true, Floor: &Floor{Rows: 1, Columns: 3}}, ValidateTiles: true}
	expectRejection(t, "operand", "3", small, 1)
	expectRejection(t, "operand", "[3]", small, 1)
	expectRejection(t, "operand", "99999999999999999999", small, 1)
	expectRejection(t, "operand", "COPYTO", nil, 1)
}

func TestInstructionLocations(t *testing.T) {
	stmt := expectStatement(t, "arg instruction", "COPYTO 0", nil)
	expected := Location{
		Start: Position{Line: 1, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 9, Offset: 8},
	}
	if stmt.Location() != expected {
		t.Errorf("expected location %+v, got %+v", expected, stmt.Location())
	}

	stmt = expectStatement(t, "arg instruction", "BUMPUP\n  [3]", nil)
	if end := stmt.Location().End; end.Line != 2 || end.Column != 6 || end.Offset != 12 {
		t.Errorf("expected the statement to end on line 2 column 6, got %+v", end)
	}
}

func TestInstructions(t *testing.T) {
	if s := expectStatement(t, "instruction", "INBOX", nil); s.Kind() != TypeInbox {
		t.Errorf("expected inbox, got %s", s.Kind())
	}
	if s := expectStatement(t, "instruction", "OUTBOX", nil); s.Kind() != TypeOutbox {
		t.Errorf("expected outbox, got %s", s.Kind())
	}

	for _, op := range oneArgOpcodes {
		s := expectStatement(t, "arg instruction", string(op)+" 2", nil)
		ai, ok := s.(*ArgInstruction)
		if !ok {
			t.Fatalf("expected *ArgInstruction for %s, got %T", op, s)
		}
		if ai.Type != op.Type() || ai.Arg.Name != "2" || ai.Arg.Indirect() {
			t.Errorf("bad node for %s: %+v", op, ai)
		}
	}

	for _, op := range jumpOpcodes {
		s := expectStatement(t, "jump instruction", string(op)+" loop", nil)
		j, ok := s.(*JumpInstruction)
		if !ok {
			t.Fatalf("expected *JumpInstruction for %s, got %T", op, s)
		}
		if j.Type != op.Type() || j.Label != "loop" {
			t.Errorf("bad node for %s: %+v", op, j)
		}
	}
}

func TestBlacklistedOpcode(t *testing.T) {
	onlyJump := &Options{Level: &Level{Commands: []string{"JUMP"}}}
	expectStatement(t, "jump instruction", "JUMP a", onlyJump)
	expectRejection(t, "jump instruction", "JUMPZ a", onlyJump, 1)
	expectRejection(t, "instruction", "INBOX", &Options{Level: &Level{Commands: []string{}}}, 1)
}

func TestBlacklistIgnoresKeywordPrefixes(t *testing.T) {
	onlyJumpz := &Options{Level: &Level{Commands: []string{"JUMPZ"}}}
	_, err := Parse(testDialect, "test", "JUMPZ [3]\n", onlyJumpz)
	if err == nil {
		t.Fatalf("expected an indirect jump target to fail")
	}
	if strings.Contains(err.Error(), "not allowed") {
		t.Errorf("expected a syntax error, got a level rejection: %v", err)
	}

	if _, err := Parse(testDialect, "test", "a:\nJUMPZ a\n", onlyJumpz); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJumpTargetCollision(t *testing.T) {
	expectRejection(t, "jump instruction", "JUMP JUMP", nil, 6)
	expectRejection(t, "jump instruction", "JUMPN  INBOX", nil, 8)
}

func TestLabel(t *testing.T) {
	s := expectStatement(t, "label", "loop_1:", nil)
	l := s.(*LabelDef)
	if l.Label != "loop_1" || l.Loc.End.Column != 8 {
		t.Errorf("bad label node %+v", l)
	}
	expectRejection(t, "label", "OUTBOX:", nil, 1)
	expectRejection(t, "label", "DEFINE:", nil, 1)
}

func TestComment(t *testing.T) {
	s := expectStatement(t, "comment", "COMMENT  12", nil)
	if c := s.(*Comment); c.Ref != "12" {
		t.Errorf("expected ref 12, got %q", c.Ref)
	}

	// Comment references are never checked against the floor.
	tiny := &Options{Level: &Level{Comments: true, Floor: &Floor{Rows: 1, Columns: 1}}, ValidateTiles: true}
	expectStatement(t, "comment", "COMMENT 12", tiny)

	expectRejection(t, "comment", "COMMENT 0", &Options{Level: &Level{Commands: []string{}}}, 1)
}

func TestDefine(t *testing.T) {
	input := "DEFINE LABEL 4\neJxLY2Bg\nKoM;"
	s := expectStatement(t, "define", input, nil)
	d := s.(*Define)
	if d.What != DefineLabel || d.Ref != "4" || d.Data != "eJxLY2Bg\nKoM" {
		t.Errorf("bad define node %+v", d)
	}
	if d.Loc.End.Offset != len(input) {
		t.Errorf("expected define to end at %d, got %d", len(input), d.Loc.End.Offset)
	}

	s = expectStatement(t, "define", "DEFINE COMMENT 0\r\nBASE64;", nil)
	if d := s.(*Define); d.What != DefineComment || d.Data != "BASE64" {
		t.Errorf("bad define node %+v", d)
	}
}

func TestDefineRejections(t *testing.T) {
	noLabels := &Options{Level: &Level{Commands: []string{}, Comments: true}}
	expectRejection(t, "define", "DEFINE LABEL 0\nBASE64;", noLabels, 1)
	expectStatement(t, "define", "DEFINE COMMENT 0\nBASE64;", noLabels)

	noComments := &Options{Level: &Level{Commands: []string{}, Labels: true}}
	expectRejection(t, "define", "DEFINE COMMENT 0\nBASE64;", noComments, 1)

	floor := &Options{Level: &Level{Labels: true, Comments: true, Floor: &Floor{Rows: 1, Columns: 3}}, ValidateTiles: true}
	expectRejection(t, "define", "DEFINE LABEL 5\nBASE64;", floor, 14)
	expectStatement(t, "define", "DEFINE LABEL 2\nBASE64;", floor)
	expectStatement(t, "define", "DEFINE COMMENT 5\nBASE64;", floor)
}

func TestParseErrorsArePositioned(t *testing.T) {
	_, err := Parse(testDialect, "test", "INBOX\nINBOX OUTBOX\n", nil)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if serr.Line != 2 || serr.Column != 7 || serr.Offset != 12 {
		t.Errorf("expected error at 2:7 (offset 12), got %d:%d (offset %d)", serr.Line, serr.Column, serr.Offset)
	}
	if !strings.HasPrefix(serr.Error(), "test:2:7: ") {
		t.Errorf("unexpected message %q", serr.Error())
	}
}

func TestParseRejectionWins(t *testing.T) {
	opts := &Options{Level: &Level{Commands: []string{"INBOX", "OUTBOX"}}}
	_, err := Parse(testDialect, "", "INBOX\n  COPYTO 0\nOUTBOX\n", opts)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if serr.Line != 2 || serr.Column != 3 || serr.Offset != 8 {
		t.Errorf("expected rejection at 2:3, got %+v", serr.Position())
	}
	if !strings.Contains(serr.Message, "COPYTO") {
		t.Errorf("expected the message to name the opcode, got %q", serr.Message)
	}
}

func TestPositionBefore(t *testing.T) {
	a := Position{Line: 1, Column: 9}
	b := Position{Line: 2, Column: 1}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before is not ordering by line then column")
	}
}
