// Package levels loads level-metadata catalogues: the ordered list of
// per-level capability profiles an embedding application hands to the parser.
//
// Catalogues may be written as JSON (a top-level array, the layout of the
// hrm-level-data package), YAML (a top-level sequence) or TOML (an array of
// [[level]] tables).
package levels

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sixlettervariables/hrm-grammar/core"
)

// Format is a catalogue file format.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unknown catalogue format for %s", path)
}

// Catalogue is an ordered collection of levels.
type Catalogue []core.Level

// tomlCatalogue is the TOML layout; TOML has no top-level arrays.
type tomlCatalogue struct {
	Level []core.Level `toml:"level"`
}

// Decode reads a catalogue in the given format.
func Decode(r io.Reader, format Format) (Catalogue, error) {
	var c Catalogue
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("decoding json catalogue: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml catalogue: %w", err)
		}
	case FormatTOML:
		var t tomlCatalogue
		if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
			return nil, fmt.Errorf("decoding toml catalogue: %w", err)
		}
		c = t.Level
	default:
		return nil, fmt.Errorf("unsupported catalogue format %s", format)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// check rejects command names that are not canonical opcode spellings.
func (c Catalogue) check() error {
	for i, l := range c {
		for _, cmd := range l.Commands {
			if !core.IsOpcode(cmd) {
				n := l.Number
				if n == 0 {
					n = i + 1
				}
				return fmt.Errorf("level %d: unknown command %q", n, cmd)
			}
		}
	}
	return nil
}

// Load reads the catalogue at path, choosing the decoder by extension.
func Load(path string) (Catalogue, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Level returns the level with the given game number. Catalogues whose
// entries carry no numbers are indexed from 1 in order.
func (c Catalogue) Level(number int) (*core.Level, error) {
	if number < 1 {
		return nil, fmt.Errorf("level numbers start at 1, got %d", number)
	}
	for i := range c {
		if c[i].Number == number {
			return &c[i], nil
		}
	}
	if number >= 1 && number <= len(c) && c[number-1].Number == 0 {
		return &c[number-1], nil
	}
	return nil, fmt.Errorf("no level %d in catalogue", number)
}

// Options builds parse options restricted to the given level.
func (c Catalogue) Options(number int, validateTiles bool) (*core.Options, error) {
	level, err := c.Level(number)
	if err != nil {
		return nil, err
	}
	return &core.Options{Level: level, ValidateTiles: validateTiles}, nil
}
