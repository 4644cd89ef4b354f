/*
Package tbx computes statistics over the tiers of Toolbox field-data files.

A Toolbox file is line oriented: each record line starts with a backslash marker
("\tx", "\mb", "\ge") naming its tier, followed by the tier content. tbx extracts
one tier across many files and reports token counts, type counts, the type/token
ratio and frequency tables. It can also list the markers in use, the character
inventory, and the lines that do not decode under the chosen encoding.

# Concept

The Engine owns the run-wide settings (encoding, logger, metrics, progress callback)
and walks the input files strictly in order, one open file at a time. Scanning and
counting live in small packages that do not perform I/O themselves:

  - pkg/scan: the line grammar, tier filtering and the tokenization modes.
  - pkg/freq: frequency tables, reports with deterministic ordering, the marker set.
  - pkg/textenc: encoding lookup and per-line decode validation.

# Usage

	eng, err := tbx.New(tbx.WithEncoding("utf-8"))
	if err != nil {
		log.Fatal(err)
	}

	table, err := eng.Count([]string{"texts/a.txt", "texts/b.txt"}, "tx", scan.ModeWords)
	if err != nil {
		log.Fatal(err)
	}

	summary, err := freq.Summarize(table)
	if errors.Is(err, domain.ErrNoUnits) {
		fmt.Println("No types found.")
		return
	}
	fmt.Println(summary.Total, summary.Distinct, summary.Ratio)
*/
package tbx
