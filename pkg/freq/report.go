package freq

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/aretw0/tbx/pkg/domain"
)

// Entry is one row of a report.
type Entry struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// Summary holds the statistics derived from a Table.
type Summary struct {
	Total    int     `json:"tokens"`
	Distinct int     `json:"types"`
	Ratio    float64 `json:"ratio"`
	Entries  []Entry `json:"frequencies"`
}

// Summarize computes the type/token statistics of t with entries in frequency order.
// It returns domain.ErrNoUnits for an empty table; the ratio is not computed then.
func Summarize(t *Table) (Summary, error) {
	if t.Total() == 0 {
		return Summary{}, domain.ErrNoUnits
	}
	return Summary{
		Total:    t.Total(),
		Distinct: t.Len(),
		Ratio:    Ratio(t.Len(), t.Total()),
		Entries:  ByFrequency(t),
	}, nil
}

// Ratio returns distinct/total rounded to four decimals.
// Rounding is decimal and exact on the binary quotient, ties to even (1/32 is 0.0312).
// total must be positive.
func Ratio(distinct, total int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(float64(distinct)/float64(total), 'f', 4, 64), 64)
	return r
}

// ByFrequency returns the entries of t by descending count.
// Equal counts are ordered by ascending unit (byte-wise).
func ByFrequency(t *Table) []Entry {
	entries := entries(t)
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Unit, b.Unit)
	})
	return entries
}

// Sorted returns the entries of t by ascending unit (byte-wise).
func Sorted(t *Table) []Entry {
	entries := entries(t)
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Unit, b.Unit)
	})
	return entries
}

func entries(t *Table) []Entry {
	out := make([]Entry, 0, len(t.counts))
	for u, n := range t.counts {
		out = append(out, Entry{Unit: u, Count: n})
	}
	return out
}
