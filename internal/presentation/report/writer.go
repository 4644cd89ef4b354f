package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/aretw0/tbx/internal/presentation/tui"
	"github.com/aretw0/tbx/pkg/domain"
	"github.com/aretw0/tbx/pkg/freq"
	"github.com/aretw0/tbx/pkg/textenc"
)

// Writer renders reports in one Format.
type Writer struct {
	out    io.Writer
	format Format
	render func(string) (string, error)
}

// Option configures a Writer.
type Option func(*Writer)

// WithMarkdownRenderer overrides the glamour renderer used by FormatPretty.
func WithMarkdownRenderer(fn func(string) (string, error)) Option {
	return func(w *Writer) {
		w.render = fn
	}
}

// New creates a Writer on out.
func New(out io.Writer, format Format, opts ...Option) *Writer {
	w := &Writer{out: out, format: format}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Tokens reports the number of tokens found in a tier.
func (w *Writer) Tokens(tier string, total int) error {
	switch w.format {
	case FormatJSON:
		return w.json(struct {
			Tier   string `json:"tier"`
			Tokens int    `json:"tokens"`
		}{tier, total})
	case FormatMarkdown, FormatPretty:
		return w.markdown(fmt.Sprintf("# Tier `%s`\n\n**%d** tokens found.\n", tier, total))
	default:
		_, err := fmt.Fprintf(w.out, "%d tokens found in tier %s\n", total, tier)
		return err
	}
}

// Types reports the type/token statistics and the frequency table of a tier.
// An empty table is reported as "No types found." and is not an error.
func (w *Writer) Types(tier string, table *freq.Table) error {
	sum, err := freq.Summarize(table)
	empty := errors.Is(err, domain.ErrNoUnits)
	if err != nil && !empty {
		return err
	}

	switch w.format {
	case FormatJSON:
		doc := typesDoc{Tier: tier, Tokens: sum.Total, Types: sum.Distinct, Frequencies: sum.Entries}
		if empty {
			doc.Frequencies = []freq.Entry{}
		} else {
			doc.Ratio = &sum.Ratio
		}
		return w.json(doc)
	case FormatMarkdown, FormatPretty:
		return w.markdown(typesMarkdown(tier, sum, empty))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d tokens found in tier %s\n", sum.Total, tier)
	if empty {
		b.WriteString("No types found.\n")
		_, err := io.WriteString(w.out, b.String())
		return err
	}
	fmt.Fprintf(&b, "%d distinct types in tier %s\n", sum.Distinct, tier)
	fmt.Fprintf(&b, "Type/token ratio: %s\n\n", FormatRatio(sum.Ratio))
	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return err
	}

	rows := make([][]string, len(sum.Entries))
	for i, e := range sum.Entries {
		rows[i] = []string{e.Unit, strconv.Itoa(e.Count)}
	}
	return w.rows([]string{"Type", "Frequency"}, rows)
}

type typesDoc struct {
	Tier        string       `json:"tier"`
	Tokens      int          `json:"tokens"`
	Types       int          `json:"types"`
	Ratio       *float64     `json:"ratio,omitempty"`
	Frequencies []freq.Entry `json:"frequencies"`
}

func typesMarkdown(tier string, sum freq.Summary, empty bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tier `%s`\n\n", tier)
	if empty {
		fmt.Fprintf(&b, "**%d** tokens found.\n\nNo types found.\n", sum.Total)
		return b.String()
	}

	b.WriteString("| Statistic | Value |\n| --- | ---: |\n")
	fmt.Fprintf(&b, "| Tokens | %d |\n", sum.Total)
	fmt.Fprintf(&b, "| Types | %d |\n", sum.Distinct)
	fmt.Fprintf(&b, "| Type/token ratio | %s |\n\n", FormatRatio(sum.Ratio))

	b.WriteString("| Type | Frequency |\n| --- | ---: |\n")
	for _, e := range sum.Entries {
		fmt.Fprintf(&b, "| %s | %d |\n", markdownCell(e.Unit), e.Count)
	}
	return b.String()
}

// Markers lists markers one per line.
func (w *Writer) Markers(markers []string) error {
	switch w.format {
	case FormatJSON:
		if markers == nil {
			markers = []string{}
		}
		return w.json(struct {
			Markers []string `json:"markers"`
		}{markers})
	case FormatMarkdown, FormatPretty:
		var b strings.Builder
		b.WriteString("| Marker |\n| --- |\n")
		for _, m := range markers {
			fmt.Fprintf(&b, "| %s |\n", markdownCell(m))
		}
		return w.markdown(b.String())
	case FormatTable:
		rows := make([][]string, len(markers))
		for i, m := range markers {
			rows[i] = []string{m}
		}
		return w.table([]string{"Marker"}, rows)
	default:
		for _, m := range markers {
			if _, err := fmt.Fprintln(w.out, m); err != nil {
				return err
			}
		}
		return nil
	}
}

// Characters lists characters with their counts.
func (w *Writer) Characters(entries []freq.Entry) error {
	switch w.format {
	case FormatJSON:
		if entries == nil {
			entries = []freq.Entry{}
		}
		return w.json(struct {
			Characters []freq.Entry `json:"characters"`
		}{entries})
	case FormatMarkdown, FormatPretty:
		var b strings.Builder
		b.WriteString("| Character | Count |\n| --- | ---: |\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "| %s | %d |\n", markdownCell(DisplayUnit(e.Unit)), e.Count)
		}
		return w.markdown(b.String())
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{DisplayUnit(e.Unit), strconv.Itoa(e.Count)}
	}
	if w.format == FormatTable {
		return w.table([]string{"Character", "Count"}, rows)
	}
	return w.tsv(rows)
}

// Problem reports one undecodable line as soon as it is found.
func (w *Writer) Problem(p textenc.Problem) error {
	if w.format == FormatJSON {
		return w.json(struct {
			File   string `json:"file"`
			Line   int    `json:"line"`
			Raw    []byte `json:"raw"`
			Quoted string `json:"quoted"`
		}{p.File, p.Line, p.Raw, fmt.Sprintf("%q", p.Raw)})
	}
	_, err := fmt.Fprintln(w.out, p.String())
	return err
}

// rows writes a header and rows as TSV or as an aligned table.
func (w *Writer) rows(header []string, rows [][]string) error {
	if w.format == FormatTable {
		return w.table(header, rows)
	}
	return w.tsv(append([][]string{header}, rows...))
}

func (w *Writer) tsv(rows [][]string) error {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) table(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w.out)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (w *Writer) markdown(md string) error {
	if w.format == FormatPretty {
		if w.render == nil {
			render, err := tui.NewRenderer("")
			if err != nil {
				return err
			}
			w.render = render
		}
		out, err := w.render(md)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(w.out, md)
	return err
}

func (w *Writer) json(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
