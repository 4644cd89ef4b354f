// Package report renders tool results to the report stream in the supported formats.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how reports are written.
type Format string

const (
	// FormatTSV is the plain tab-separated output, one row per line.
	FormatTSV Format = "tsv"
	// FormatTable aligns columns with tablewriter.
	FormatTable Format = "table"
	// FormatMarkdown writes GitHub-flavoured markdown tables.
	FormatMarkdown Format = "markdown"
	// FormatPretty renders the markdown output for the terminal with glamour.
	FormatPretty Format = "pretty"
	// FormatJSON writes one JSON document per report (NDJSON for validation problems).
	FormatJSON Format = "json"
)

// Formats lists every accepted format, default first.
var Formats = []Format{FormatTSV, FormatTable, FormatMarkdown, FormatPretty, FormatJSON}

// ParseFormat validates a --format value. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTSV, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// FormatRatio prints a ratio in its shortest form. Integral values keep
// a trailing ".0" and no trailing zeros are added otherwise.
func FormatRatio(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// DisplayUnit makes a unit safe for a one-line cell. Units made only of printable
// characters are returned as is; others are Go-escaped ("\n", "\t", "\ufeff").
func DisplayUnit(u string) string {
	if strings.IndexFunc(u, func(r rune) bool { return !strconv.IsPrint(r) }) < 0 {
		return u
	}
	q := strconv.Quote(u)
	return q[1 : len(q)-1]
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "|", `\|`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "#", `\#`,
)

func markdownCell(s string) string {
	if s == "" {
		return " "
	}
	return markdownEscaper.Replace(s)
}
