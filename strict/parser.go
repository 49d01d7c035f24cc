package strict

import (
	"github.com/shepheb/psec"

	"github.com/sixlettervariables/hrm-grammar/core"
)

// Dialect is strict HRM assembly, as the game itself writes it: keywords are
// upper case only, and a label may not be spelled like a keyword.
var Dialect = &core.Dialect{
	Name:     "strict",
	Keyword:  keyword,
	Reserved: core.ReservedExact,
}

func keyword(kw string) psec.Parser {
	return psec.Literal(kw)
}
