package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Progress prints one status line per input file.
type Progress struct {
	out   *termenv.Output
	quiet bool
}

// NewProgress writes status lines to w. In ColorAuto mode colour is used only
// when w is a terminal.
func NewProgress(w io.Writer, color string, quiet bool) *Progress {
	return &Progress{
		out:   termenv.NewOutput(w, termenv.WithProfile(profileFor(w, color))),
		quiet: quiet,
	}
}

func profileFor(w io.Writer, color string) termenv.Profile {
	switch color {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI256
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// File announces that name is about to be processed.
func (p *Progress) File(name string) {
	if p.quiet {
		return
	}
	label := p.out.String("Processing file:").Foreground(p.out.Color("#818cf8"))
	fmt.Fprintf(p.out, "%s %s\n", label, name)
}

// Error prints a fatal error. It is shown even in quiet mode.
func (p *Progress) Error(err error) {
	label := p.out.String("Error:").Foreground(p.out.Color("#fb7185")).Bold()
	fmt.Fprintf(p.out, "%s %v\n", label, err)
}
