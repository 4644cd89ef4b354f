package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects the terminal background; "notty", "dark", "light"
// and the other glamour standard styles are accepted too.
func NewRenderer(style string) (func(string) (string, error), error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	// Frequency tables must not be re-wrapped.
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
