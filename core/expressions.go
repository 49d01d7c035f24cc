package core

import (
	"github.com/shepheb/psec"
)

// checkTile applies tile bounds validation to a numeral reference. Names are
// not tiles and pass untouched.
func (s *parseState) checkTile(loc *psec.Loc, name string) error {
	if !isNumeral(name) {
		return nil
	}
	tile, ok := Operand{Name: name}.Tile()
	if !ok {
		// Too large to be any floor's tile.
		tile = -1
	}
	if !s.validator.IsValidTile(tile) {
		return s.reject(loc, "tile %s is not on the floor", name)
	}
	return nil
}

func addOperandParsers(g *psec.Grammar, d *Dialect, s *parseState) {
	g.AddSymbol("operand",
		psec.Alt(sym("indirect operand"), sym("direct operand")))

	g.WithAction("indirect operand",
		psec.Seq(lit("["), sym("space"), sym("name"), sym("space"), lit("]")),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			rs := r.([]interface{})
			name := rs[2].(string)
			if !s.validator.CanDereference() {
				return nil, s.reject(loc, "indirect addressing is not allowed in this level")
			}
			if d.Reserved(name) {
				return nil, s.reject(loc, "reserved word %q cannot be used as an operand", name)
			}
			if err := s.checkTile(loc, name); err != nil {
				return nil, err
			}
			return Operand{Type: IndirectIdentifier, Name: name}, nil
		})

	g.WithAction("direct operand", sym("name"),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			name := r.(string)
			if d.Reserved(name) {
				return nil, s.reject(loc, "reserved word %q cannot be used as an operand", name)
			}
			if err := s.checkTile(loc, name); err != nil {
				return nil, err
			}
			return Operand{Type: Identifier, Name: name}, nil
		})

	g.WithAction("jump target", sym("name"),
		func(r interface{}, loc *psec.Loc) (interface{}, error) {
			name := r.(string)
			if d.Reserved(name) {
				return nil, s.reject(loc, "reserved word %q cannot be used as a jump target", name)
			}
			return name, nil
		})
}
