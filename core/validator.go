package core

// Floor is the size of a level's tile floor.
type Floor struct {
	Rows    int `json:"rows" yaml:"rows" toml:"rows"`
	Columns int `json:"columns" yaml:"columns" toml:"columns"`
}

// Tiles is the number of addressable tiles.
func (f *Floor) Tiles() int {
	return f.Rows * f.Columns
}

// Level is the capability profile of one game level. A nil Commands slice
// leaves opcodes unrestricted; an empty non-nil slice allows none. A nil Floor
// disables tile bounds checking. The boolean capabilities are closed unless
// set.
type Level struct {
	Number        int      `json:"number,omitempty" yaml:"number,omitempty" toml:"number,omitempty"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Commands      []string `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands,omitempty"`
	Comments      bool     `json:"comments,omitempty" yaml:"comments,omitempty" toml:"comments,omitempty"`
	Labels        bool     `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
	Dereferencing bool     `json:"dereferencing,omitempty" yaml:"dereferencing,omitempty" toml:"dereferencing,omitempty"`
	Floor         *Floor   `json:"floor,omitempty" yaml:"floor,omitempty" toml:"floor,omitempty"`
}

// Options configure a single parse. A nil *Options, or a nil Level, means no
// restrictions.
type Options struct {
	Level         *Level
	ValidateTiles bool
}

// Validator answers the capability questions the grammar asks while parsing.
// It is built once per parse and never changes.
type Validator struct {
	level         *Level
	validateTiles bool
}

// NewValidator builds a Validator for the given options; opts may be nil.
func NewValidator(opts *Options) *Validator {
	if opts == nil {
		return &Validator{}
	}
	return &Validator{level: opts.Level, validateTiles: opts.ValidateTiles}
}

// IsBlacklisted reports whether the level restricts commands and op is not
// among them. No opcode is exempt.
func (v *Validator) IsBlacklisted(op Opcode) bool {
	if v.level == nil || v.level.Commands == nil {
		return false
	}
	for _, c := range v.level.Commands {
		if c == string(op) {
			return false
		}
	}
	return true
}

// IsValidTile reports whether tile is on the floor. Only checked when tile
// validation was requested and the level has a floor.
func (v *Validator) IsValidTile(tile int) bool {
	if !v.validateTiles || v.level == nil || v.level.Floor == nil {
		return true
	}
	return tile >= 0 && tile < v.level.Floor.Tiles()
}

// CanDereference reports whether [N] operands are allowed.
func (v *Validator) CanDereference() bool {
	return v.level == nil || v.level.Dereferencing
}

// CanComment reports whether COMMENT and DEFINE COMMENT are allowed.
func (v *Validator) CanComment() bool {
	return v.level == nil || v.level.Comments
}

// CanLabelTiles reports whether DEFINE LABEL is allowed.
func (v *Validator) CanLabelTiles() bool {
	return v.level == nil || v.level.Labels
}
