package core

import (
	"github.com/shepheb/psec"
)

// addKeywordParsers adds a "kw:NAME" symbol per reserved word.
func addKeywordParsers(g *psec.Grammar, d *Dialect) {
	for _, kw := range Keywords() {
		g.AddSymbol("kw:"+kw, d.Keyword(kw))
	}
}

// allowed applies the level's command whitelist to a fully matched statement.
func (s *parseState) allowed(loc *psec.Loc, op Opcode) error {
	if s.validator.IsBlacklisted(op) {
		return s.reject(loc, "%s is not allowed in this level", op)
	}
	return nil
}

// addInstructionParsers adds the three instruction families. Each statement
// starts at its keyword and ends where its last token ends.
func addInstructionParsers(g *psec.Grammar, s *parseState) {
	var noArg, oneArg, jumps []psec.Parser

	for _, op := range noArgOpcodes {
		op := op
		name := "op:" + string(op)
		g.WithAction(name, psec.SeqAt(1, sym("kw:"+string(op)), sym("here")),
			func(r interface{}, loc *psec.Loc) (interface{}, error) {
				if err := s.allowed(loc, op); err != nil {
					return nil, err
				}
				return NewInstruction(op.Type(), Location{Start: s.at(loc), End: r.(Position)}), nil
			})
		noArg = append(noArg, sym(name))
	}

	for _, op := range oneArgOpcodes {
		op := op
		name := "op:" + string(op)
		g.WithAction(name,
			psec.Seq(sym("kw:"+string(op)), sym("gap"), sym("operand"), sym("here")),
			func(r interface{}, loc *psec.Loc) (interface{}, error) {
				if err := s.allowed(loc, op); err != nil {
					return nil, err
				}
				rs := r.([]interface{})
				return NewArgInstruction(op.Type(), rs[2].(Operand),
					Location{Start: s.at(loc), End: rs[3].(Position)}), nil
			})
		oneArg = append(oneArg, sym(name))
	}

	for _, op := range jumpOpcodes {
		op := op
		name := "op:" + string(op)
		g.WithAction(name,
			psec.Seq(sym("kw:"+string(op)), sym("gap"), sym("jump target"), sym("here")),
			func(r interface{}, loc *psec.Loc) (interface{}, error) {
				if err := s.allowed(loc, op); err != nil {
					return nil, err
				}
				rs := r.([]interface{})
				return NewJump(op.Type(), rs[2].(string),
					Location{Start: s.at(loc), End: rs[3].(Position)}), nil
			})
		jumps = append(jumps, sym(name))
	}

	g.AddSymbol("instruction", psec.Alt(noArg...))
	g.AddSymbol("arg instruction", psec.Alt(oneArg...))
	g.AddSymbol("jump instruction", psec.Alt(jumps...))
}
