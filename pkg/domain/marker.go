package domain

// HeaderMarker is the marker of the Toolbox database header line ("\_sh v3.0 400 Text").
// It never names a content tier.
const HeaderMarker = "_sh"

// MarkerLine is a line recognised by the Toolbox line grammar.
// Marker never contains whitespace and never includes the leading backslash.
type MarkerLine struct {
	Marker  string
	Content string
}

// Is reports whether the line belongs to the given tier.
// The comparison is exact: no case folding, no trimming.
func (m MarkerLine) Is(tier string) bool {
	return m.Marker == tier
}
