package core

import (
	"github.com/shepheb/psec"
)

// Wrap the most common parser ops for brevity.
func lit(s string) psec.Parser {
	return psec.Literal(s)
}
func sym(s string) psec.Parser {
	return psec.Symbol(s)
}

// addBasicParsers adds whitespace, line comments, names and the zero-width
// "here" marker to g.
func addBasicParsers(g *psec.Grammar, s *parseState) {
	// Same-line whitespace.
	g.AddSymbol("wsline", psec.Many(psec.OneOf(" \t\r")))
	g.AddSymbol("ws1", psec.Many1(psec.OneOf(" \t\r")))

	// Whitespace that may span lines, used inside brackets.
	g.AddSymbol("space", psec.ManyDrop(psec.OneOf(" \t\r\n")))

	// -- runs to the end of the line and is dropped.
	g.WithAction("line comment", psec.Seq(lit("--"), psec.ManyDrop(psec.NoneOf("\n"))),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			return nil, nil
		})

	// Anything insignificant between statements: blank lines, indentation and
	// line comments.
	g.AddSymbol("blank",
		psec.ManyDrop(psec.Alt(psec.OneOf(" \t\r\n"), sym("line comment"))))

	// Separation between a keyword and its argument. The argument may be
	// wrapped onto the next line.
	g.AddSymbol("gap",
		psec.Many1(psec.Alt(psec.OneOf(" \t\r\n"), sym("line comment"))))

	// The end of a line: an optional trailing comment, then a newline. Only
	// label declarations may precede a statement on its line.
	g.AddSymbol("eol", psec.Seq(sym("wsline"),
		psec.Optional(sym("line comment")), lit("\n"), sym("blank")))

	// Tile numbers, label names and references all share one charset.
	g.AddSymbol("name", psec.Stringify(psec.Many1(psec.Alt(
		psec.Range('a', 'z'), psec.Range('A', 'Z'), psec.Range('0', '9'),
		psec.OneOf("_")))))

	// Matches nothing, and yields the current position. Used to find where a
	// statement ends.
	g.WithAction("here", lit(""),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			return s.at(loc), nil
		})
}

// isNumeral reports whether name is a non-empty run of decimal digits.
func isNumeral(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// buildGrammar assembles the complete grammar for one parse.
func buildGrammar(d *Dialect, s *parseState) *psec.Grammar {
	g := psec.NewGrammar()
	addBasicParsers(g, s)
	addKeywordParsers(g, d)
	addOperandParsers(g, d, s)
	addInstructionParsers(g, s)
	addDirectiveParsers(g, s)

	g.AddSymbol("START", sym("program"))

	g.AddSymbol("statement",
		psec.Alt(sym("define"), sym("comment"),
			sym("jump instruction"), sym("arg instruction"),
			sym("instruction")))

	g.WithAction("label",
		psec.Seq(sym("name"), lit(":"), sym("here")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			name := rs[0].(string)
			if d.Reserved(name) {
				return nil, s.reject(loc, "reserved word %q cannot be used as a label", name)
			}
			return NewLabel(name, Location{Start: s.at(loc), End: rs[2].(Position)}), nil
		})

	// A line is any number of label declarations, then at most one statement.
	// Labels may share the line with the statement that follows them.
	g.WithAction("line",
		psec.Seq(psec.Many(psec.SeqAt(0, sym("label"), sym("blank"))),
			psec.Optional(sym("statement"))),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			var stmts []Statement
			if labels, ok := rs[0].([]interface{}); ok {
				for _, l := range labels {
					stmts = append(stmts, l.(Statement))
				}
			}
			if stmt, ok := rs[1].(Statement); ok {
				stmts = append(stmts, stmt)
			}
			return stmts, nil
		})

	g.WithAction("program",
		psec.Seq(sym("blank"), psec.SepBy(sym("line"), sym("eol")),
			sym("blank"), sym("here")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			prog := &Program{Statements: []Statement{}}
			if lines, ok := rs[1].([]interface{}); ok {
				for _, line := range lines {
					if stmts, ok := line.([]Statement); ok {
						prog.Statements = append(prog.Statements, stmts...)
					}
				}
			}
			return &parsed{prog: prog, end: rs[3].(Position)}, nil
		})

	return g
}

// parsed is the result of the program rule: the Program and the position the
// grammar stopped at.
type parsed struct {
	prog *Program
	end  Position
}
