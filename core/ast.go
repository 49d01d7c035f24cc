package core

import "strconv"

// Position is a point in the source text. Line and Column are 1-based, Offset
// is the 0-based byte offset.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Location is the source span of a statement.
type Location struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// StatementType is the discriminator carried by every statement node.
type StatementType string

// Statement types, matching the lower-case opcode names.
const (
	TypeInbox    StatementType = "inbox"
	TypeOutbox   StatementType = "outbox"
	TypeCopyfrom StatementType = "copyfrom"
	TypeCopyto   StatementType = "copyto"
	TypeAdd      StatementType = "add"
	TypeSub      StatementType = "sub"
	TypeBumpup   StatementType = "bumpup"
	TypeBumpdn   StatementType = "bumpdn"
	TypeJump     StatementType = "jump"
	TypeJumpz    StatementType = "jumpz"
	TypeJumpn    StatementType = "jumpn"
	TypeComment  StatementType = "comment"
	TypeDefine   StatementType = "define"
	TypeLabel    StatementType = "label"
)

// Statement is one node of a Program. The concrete types are Instruction,
// ArgInstruction, JumpInstruction, Comment, Define and LabelDef.
type Statement interface {
	Kind() StatementType
	Location() Location
}

// Instruction is a statement without operands: INBOX or OUTBOX.
type Instruction struct {
	Type StatementType `json:"type" yaml:"type"`
	Loc  Location      `json:"_location" yaml:"_location"`
}

// Kind for Instruction.
func (i *Instruction) Kind() StatementType { return i.Type }

// Location for Instruction.
func (i *Instruction) Location() Location { return i.Loc }

// ArgInstruction is a statement with a single tile operand: COPYFROM, COPYTO,
// ADD, SUB, BUMPUP or BUMPDN.
type ArgInstruction struct {
	Type StatementType `json:"type" yaml:"type"`
	Arg  Operand       `json:"arg" yaml:"arg"`
	Loc  Location      `json:"_location" yaml:"_location"`
}

// Kind for ArgInstruction.
func (i *ArgInstruction) Kind() StatementType { return i.Type }

// Location for ArgInstruction.
func (i *ArgInstruction) Location() Location { return i.Loc }

// JumpInstruction is JUMP, JUMPZ or JUMPN with its target label. The label is
// not resolved to an address.
type JumpInstruction struct {
	Type  StatementType `json:"type" yaml:"type"`
	Label string        `json:"label" yaml:"label"`
	Loc   Location      `json:"_location" yaml:"_location"`
}

// Kind for JumpInstruction.
func (j *JumpInstruction) Kind() StatementType { return j.Type }

// Location for JumpInstruction.
func (j *JumpInstruction) Location() Location { return j.Loc }

// Comment is the COMMENT instruction, an annotation marker pointing at ref.
type Comment struct {
	Type StatementType `json:"type" yaml:"type"`
	Ref  string        `json:"ref" yaml:"ref"`
	Loc  Location      `json:"_location" yaml:"_location"`
}

// Kind for Comment.
func (c *Comment) Kind() StatementType { return c.Type }

// Location for Comment.
func (c *Comment) Location() Location { return c.Loc }

// DefineKind says what a define block annotates.
type DefineKind string

// Define kinds.
const (
	DefineLabel   DefineKind = "label"
	DefineComment DefineKind = "comment"
)

// Define is a DEFINE LABEL or DEFINE COMMENT block. Data is the payload up to
// (not including) the terminating ';', kept verbatim.
type Define struct {
	Type StatementType `json:"type" yaml:"type"`
	What DefineKind    `json:"what" yaml:"what"`
	Ref  string        `json:"ref" yaml:"ref"`
	Data string        `json:"data" yaml:"data"`
	Loc  Location      `json:"_location" yaml:"_location"`
}

// Kind for Define.
func (d *Define) Kind() StatementType { return d.Type }

// Location for Define.
func (d *Define) Location() Location { return d.Loc }

// LabelDef declares a jump target at the current program position.
type LabelDef struct {
	Type  StatementType `json:"type" yaml:"type"`
	Label string        `json:"label" yaml:"label"`
	Loc   Location      `json:"_location" yaml:"_location"`
}

// Kind for LabelDef.
func (l *LabelDef) Kind() StatementType { return l.Type }

// Location for LabelDef.
func (l *LabelDef) Location() Location { return l.Loc }

// OperandType tells direct and indirect operands apart.
type OperandType string

// Operand types.
const (
	Identifier         OperandType = "Identifier"
	IndirectIdentifier OperandType = "IndirectIdentifier"
)

// Operand is the argument of a one-argument instruction. Name is the literal
// token text, a numeral or a bound name.
type Operand struct {
	Type OperandType `json:"type" yaml:"type"`
	Name string      `json:"name" yaml:"name"`
}

// Indirect reports whether the operand was written as [N].
func (o Operand) Indirect() bool { return o.Type == IndirectIdentifier }

// Tile coerces a numeral operand to its tile index.
func (o Operand) Tile() (int, bool) {
	if !isNumeral(o.Name) {
		return 0, false
	}
	n, err := strconv.Atoi(o.Name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewInstruction constructs an INBOX or OUTBOX node.
func NewInstruction(t StatementType, loc Location) *Instruction {
	return &Instruction{Type: t, Loc: loc}
}

// NewArgInstruction constructs a one-operand instruction node.
func NewArgInstruction(t StatementType, arg Operand, loc Location) *ArgInstruction {
	return &ArgInstruction{Type: t, Arg: arg, Loc: loc}
}

// NewJump constructs a jump node.
func NewJump(t StatementType, label string, loc Location) *JumpInstruction {
	return &JumpInstruction{Type: t, Label: label, Loc: loc}
}

// NewComment constructs a COMMENT node.
func NewComment(ref string, loc Location) *Comment {
	return &Comment{Type: TypeComment, Ref: ref, Loc: loc}
}

// NewDefine constructs a define block node.
func NewDefine(what DefineKind, ref, data string, loc Location) *Define {
	return &Define{Type: TypeDefine, What: what, Ref: ref, Data: data, Loc: loc}
}

// NewLabel constructs a label declaration node.
func NewLabel(label string, loc Location) *LabelDef {
	return &LabelDef{Type: TypeLabel, Label: label, Loc: loc}
}

// Program is the parsed file: its statements in source order.
type Program struct {
	Statements []Statement `json:"statements" yaml:"statements"`
}

// Labels returns the declared label names in source order.
func (p *Program) Labels() []string {
	var labels []string
	for _, s := range p.Statements {
		if l, ok := s.(*LabelDef); ok {
			labels = append(labels, l.Label)
		}
	}
	return labels
}

// Count returns how many statements of the given type the program holds.
func (p *Program) Count(t StatementType) int {
	n := 0
	for _, s := range p.Statements {
		if s.Kind() == t {
			n++
		}
	}
	return n
}
