package strict

import (
	"github.com/sixlettervariables/hrm-grammar/core"
)

// Driver is the host for some methods.
type Driver struct {
	Options *core.Options
}

// ParseFile parses a file by name, returning its Program.
func (d *Driver) ParseFile(filename string) (*core.Program, error) {
	return core.ParseFile(Dialect, filename, d.Options)
}

// ParseString parses text, naming it filename in errors.
func (d *Driver) ParseString(filename, text string) (*core.Program, error) {
	return core.Parse(Dialect, filename, text, d.Options)
}

// Parse parses text in the strict dialect. opts may be nil.
func Parse(text string, opts *core.Options) (*core.Program, error) {
	return core.Parse(Dialect, "", text, opts)
}
