package scan

import (
	"strings"
	"unicode"

	"github.com/aretw0/tbx/pkg/domain"
)

// Classify applies the Toolbox line grammar to a single line.
//
// The line is trimmed first, so a marker without content ("\tx" or "\tx  ")
// has no whitespace left after it and is not a marker line.
func Classify(line string) (domain.MarkerLine, bool) {
	line = strings.TrimFunc(line, IsSpace)

	rest, ok := strings.CutPrefix(line, `\`)
	if !ok {
		return domain.MarkerLine{}, false
	}

	end := strings.IndexFunc(rest, IsSpace)
	if end <= 0 {
		// No whitespace after the marker, or an empty marker ("\ foo").
		return domain.MarkerLine{}, false
	}

	return domain.MarkerLine{
		Marker:  rest[:end],
		Content: strings.TrimFunc(rest[end:], IsSpace),
	}, true
}

// IsSpace reports whether r separates markers and tokens: Unicode white space
// plus the ASCII information separators U+001C to U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
