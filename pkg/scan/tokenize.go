package scan

import (
	"fmt"
	"strings"
)

// Mode selects how tier content is turned into counted units.
type Mode int

const (
	// ModeWords splits tier content on runs of whitespace.
	ModeWords Mode = iota
	// ModeValues counts each tier content as a single unit.
	ModeValues
	// ModeCharacters counts every character of every line, regardless of tier.
	ModeCharacters
)

// String returns the name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeValues:
		return "values"
	case ModeCharacters:
		return "characters"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// UsesTier reports whether the mode reads only the lines of one tier.
func (m Mode) UsesTier() bool {
	return m != ModeCharacters
}

// Words splits content on maximal runs of white space (see IsSpace).
// It never returns empty tokens.
func Words(content string) []string {
	return strings.FieldsFunc(content, IsSpace)
}

// Value returns the trimmed content as one unit, internal whitespace included.
func Value(content string) string {
	return strings.TrimFunc(content, IsSpace)
}

// Characters returns every character of line as its own unit,
// whitespace, backslashes and the line terminator included.
func Characters(line string) []string {
	units := make([]string, 0, len(line))
	for _, r := range line {
		units = append(units, string(r))
	}
	return units
}

// Units applies m to a tier content (ModeWords, ModeValues) or a raw line (ModeCharacters).
func (m Mode) Units(s string) []string {
	switch m {
	case ModeValues:
		return []string{Value(s)}
	case ModeCharacters:
		return Characters(s)
	default:
		return Words(s)
	}
}
