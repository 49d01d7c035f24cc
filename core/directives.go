package core

import "github.com/shepheb/psec"

// ref is a reference token together with where it starts, so checks made
// later by the enclosing statement can still point at it.
type ref struct {
	name string
	loc  *psec.Loc
}

// Shared parsers for the annotation statements: COMMENT and the DEFINE blocks.
// Their references are not tiles on the floor, except for DEFINE LABEL.
func addDirectiveParsers(g *psec.Grammar, s *parseState) {
	g.WithAction("ref", sym("name"),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			return &ref{name: r.(string), loc: loc}, nil
		})

	g.WithAction("comment",
		psec.Seq(sym("kw:"+kwComment), sym("gap"), sym("ref"), sym("here")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			if !s.validator.CanComment() {
				return nil, s.reject(loc, "comments are not allowed in this level")
			}
			rs := r.([]interface{})
			return NewComment(rs[2].(*ref).name,
				Location{Start: s.at(loc), End: rs[3].(Position)}), nil
		})

	// The payload starts on the line after the header and runs to the first
	// ';'. It is opaque here.
	g.WithAction("payload",
		psec.Seq(sym("wsline"), lit("\n"),
			psec.Stringify(psec.Many(psec.NoneOf(";"))), lit(";")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			data, _ := rs[2].(string)
			return data, nil
		})

	g.WithAction("define kind:label", sym("kw:"+kwLabel),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			return DefineLabel, nil
		})
	g.WithAction("define kind:comment", sym("kw:"+kwComment),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			return DefineComment, nil
		})
	g.AddSymbol("define kind",
		psec.Alt(sym("define kind:label"), sym("define kind:comment")))

	g.WithAction("define",
		psec.Seq(sym("kw:"+kwDefine), sym("ws1"), sym("define kind"), sym("ws1"),
			sym("ref"), sym("payload"), sym("here")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			target := rs[4].(*ref)
			what := rs[2].(DefineKind)

			switch what {
			case DefineComment:
				if !s.validator.CanComment() {
					return nil, s.reject(loc, "comments are not allowed in this level")
				}
			case DefineLabel:
				if !s.validator.CanLabelTiles() {
					return nil, s.reject(loc, "tile labels are not allowed in this level")
				}
				if err := s.checkTile(target.loc, target.name); err != nil {
					return nil, err
				}
			}

			return NewDefine(what, target.name, rs[5].(string),
				Location{Start: s.at(loc), End: rs[6].(Position)}), nil
		})
}
