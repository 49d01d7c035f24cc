package extended

import (
	"github.com/shepheb/psec"

	"github.com/sixlettervariables/hrm-grammar/core"
)

// Dialect is the lenient flavour of HRM assembly meant for hand-written
// programs. Keywords match in any case; statement types are always emitted
// in lower case, and label names collide with keywords regardless of case.
var Dialect = &core.Dialect{
	Name:     "extended",
	Keyword:  keyword,
	Reserved: core.ReservedFold,
}

func keyword(kw string) psec.Parser {
	return psec.LiteralIC(kw)
}
