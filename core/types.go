package core

import (
	"strings"

	"github.com/shepheb/psec"
)

// Opcode is the canonical upper-case spelling of an instruction keyword, the
// form used by level command whitelists.
type Opcode string

// Opcodes. The jump and copy families are listed longest first so a PEG
// alternation never stops at a shorter prefix such as JUMP in JUMPZ.
const (
	INBOX    Opcode = "INBOX"
	OUTBOX   Opcode = "OUTBOX"
	COPYFROM Opcode = "COPYFROM"
	COPYTO   Opcode = "COPYTO"
	ADD      Opcode = "ADD"
	SUB      Opcode = "SUB"
	BUMPUP   Opcode = "BUMPUP"
	BUMPDN   Opcode = "BUMPDN"
	JUMPZ    Opcode = "JUMPZ"
	JUMPN    Opcode = "JUMPN"
	JUMP     Opcode = "JUMP"
)

// Type is the statement tag emitted for the opcode.
func (o Opcode) Type() StatementType {
	return StatementType(strings.ToLower(string(o)))
}

var (
	noArgOpcodes  = []Opcode{INBOX, OUTBOX}
	oneArgOpcodes = []Opcode{COPYFROM, COPYTO, ADD, SUB, BUMPUP, BUMPDN}
	jumpOpcodes   = []Opcode{JUMPZ, JUMPN, JUMP}
)

// Words that are not opcodes but still may not be used as label names.
const (
	kwComment = "COMMENT"
	kwDefine  = "DEFINE"
	kwLabel   = "LABEL"
)

// Keywords returns every reserved word in canonical case.
func Keywords() []string {
	var kws []string
	for _, group := range [][]Opcode{noArgOpcodes, oneArgOpcodes, jumpOpcodes} {
		for _, op := range group {
			kws = append(kws, string(op))
		}
	}
	return append(kws, kwComment, kwDefine, kwLabel)
}

// IsOpcode reports whether name is exactly the canonical spelling of an opcode.
func IsOpcode(name string) bool {
	for _, group := range [][]Opcode{noArgOpcodes, oneArgOpcodes, jumpOpcodes} {
		for _, op := range group {
			if string(op) == name {
				return true
			}
		}
	}
	return false
}

// Dialect hides the lexical differences between the strict and extended
// flavours of HRM assembly behind a pair of hooks. The grammar rules
// themselves are shared.
type Dialect struct {
	Name string

	// Keyword builds the parser that recognizes a reserved word given in
	// canonical upper case.
	Keyword func(kw string) psec.Parser

	// Reserved reports whether a label name collides with a reserved word.
	Reserved func(name string) bool
}

// ReservedExact is the case-sensitive collision check.
func ReservedExact(name string) bool {
	for _, kw := range Keywords() {
		if kw == name {
			return true
		}
	}
	return false
}

// ReservedFold is the case-insensitive collision check.
func ReservedFold(name string) bool {
	for _, kw := range Keywords() {
		if strings.EqualFold(kw, name) {
			return true
		}
	}
	return false
}
