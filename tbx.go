package tbx

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/tbx/pkg/domain"
	"github.com/aretw0/tbx/pkg/freq"
	"github.com/aretw0/tbx/pkg/observability"
	"github.com/aretw0/tbx/pkg/scan"
	"github.com/aretw0/tbx/pkg/textenc"
)

// Version is the release of the tbx tools.
const Version = "0.3.0"

// Engine is the high-level entry point for the tbx library.
// It scans files one after the other with a single encoding and feeds the scanners
// and counters of the pkg/ packages.
type Engine struct {
	encodingName string
	encoding     textenc.Encoding
	logger       *slog.Logger
	metrics      *observability.Metrics
	progress     func(name string)
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithEncoding sets the encoding name used to decode every input file (default: utf-8).
func WithEncoding(name string) Option {
	return func(e *Engine) {
		e.encodingName = name
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics records run counters into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithProgress registers a callback invoked with each file name before the file is opened.
func WithProgress(fn func(name string)) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// New initializes an Engine. It fails with domain.ErrUnknownEncoding
// before touching any file if the encoding cannot be resolved.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{encodingName: textenc.DefaultName}
	for _, opt := range opts {
		opt(eng)
	}

	enc, err := textenc.Lookup(eng.encodingName)
	if err != nil {
		return nil, err
	}
	eng.encoding = enc

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.metrics == nil {
		eng.metrics = observability.NewMetrics()
	}
	if eng.progress == nil {
		eng.progress = func(string) {}
	}

	eng.logger = eng.logger.With("encoding", enc.Name())
	return eng, nil
}

// Encoding returns the resolved input encoding.
func (e *Engine) Encoding() textenc.Encoding {
	return e.encoding
}

// Count tokenizes the files under mode into one shared table.
// ModeWords and ModeValues read only the lines of tier; ModeCharacters reads every line
// and ignores tier. Any file error aborts the run and no table is returned.
func (e *Engine) Count(files []string, tier string, mode scan.Mode) (*freq.Table, error) {
	table := freq.NewTable()
	units := e.metrics.Units.WithLabelValues(mode.String())

	err := e.eachFile(files, func(name string, f io.Reader) error {
		r := scan.NewReader(e.encoding.NewReader(f))
		lines, replaced := watchReplacements(r.Lines())
		before := table.Total()

		if mode.UsesTier() {
			for content := range scan.Tier(lines, tier) {
				table.ObserveAll(mode.Units(content)...)
			}
		} else {
			for line := range lines {
				table.ObserveAll(mode.Units(line)...)
			}
		}
		if err := r.Err(); err != nil {
			return err
		}
		e.warnReplacements(name, *replaced)

		added := table.Total() - before
		e.metrics.Lines.Add(float64(r.Count()))
		units.Add(float64(added))
		e.logger.Debug("Scanned file", "file", name, "mode", mode.String(), "tier", tier, "lines", r.Count(), "units", added)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Markers collects every marker of the files. Content is ignored.
func (e *Engine) Markers(files []string) (*freq.MarkerSet, error) {
	set := freq.NewMarkerSet()

	err := e.eachFile(files, func(name string, f io.Reader) error {
		r := scan.NewReader(e.encoding.NewReader(f))
		lines, replaced := watchReplacements(r.Lines())
		for marker := range scan.Markers(lines) {
			set.Add(marker)
		}
		if err := r.Err(); err != nil {
			return err
		}
		e.warnReplacements(name, *replaced)
		e.metrics.Lines.Add(float64(r.Count()))
		e.logger.Debug("Scanned file", "file", name, "lines", r.Count(), "markers", set.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Validate decodes every raw line of the files and calls report for each failure.
// Decoding failures never stop the scan. It returns the number of problems found.
func (e *Engine) Validate(files []string, report func(textenc.Problem)) (int, error) {
	problems := 0

	err := e.eachFile(files, func(name string, f io.Reader) error {
		lines, err := textenc.Validate(name, f, e.encoding, func(p textenc.Problem) {
			problems++
			e.metrics.Problems.Inc()
			report(p)
		})
		e.metrics.Lines.Add(float64(lines))
		e.logger.Debug("Validated file", "file", name, "lines", lines)
		return err
	})
	return problems, err
}

// watchReplacements counts the lines holding U+FFFD, which the decoding reader
// substitutes for undecodable input.
func watchReplacements(lines iter.Seq[string]) (iter.Seq[string], *int) {
	n := new(int)
	return func(yield func(string) bool) {
		for line := range lines {
			if strings.ContainsRune(line, utf8.RuneError) {
				*n++
			}
			if !yield(line) {
				return
			}
		}
	}, n
}

func (e *Engine) warnReplacements(name string, lines int) {
	if lines > 0 {
		e.logger.Debug("Undecodable bytes replaced, run validate to locate them", "file", name, "lines", lines)
	}
}

// eachFile opens, scans and closes the files strictly one at a time, in order.
func (e *Engine) eachFile(files []string, scanFn func(name string, f io.Reader) error) error {
	for _, name := range files {
		if err := e.scanFile(name, scanFn); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) scanFile(name string, scanFn func(name string, f io.Reader) error) error {
	e.progress(name)

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	defer f.Close()

	if err := scanFn(name, f); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrFileAccess, name, err)
	}
	e.metrics.Files.Inc()
	return nil
}
