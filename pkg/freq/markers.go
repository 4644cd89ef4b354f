package freq

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/aretw0/tbx/pkg/domain"
)

// MarkerSet collects the distinct markers seen across files, kept in ascending order.
type MarkerSet struct {
	set *treeset.Set
}

// NewMarkerSet creates an empty set.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{set: treeset.NewWithStringComparator()}
}

// Add records marker.
func (m *MarkerSet) Add(marker string) {
	m.set.Add(marker)
}

// Contains reports whether marker was recorded, the header marker included.
func (m *MarkerSet) Contains(marker string) bool {
	return m.set.Contains(marker)
}

// Len returns the number of recorded markers, the header marker included.
func (m *MarkerSet) Len() int {
	return m.set.Size()
}

// Sorted returns the recorded markers in ascending order without domain.HeaderMarker.
func (m *MarkerSet) Sorted() []string {
	out := make([]string, 0, m.set.Size())
	it := m.set.Iterator()
	for it.Next() {
		marker := it.Value().(string)
		if marker == domain.HeaderMarker {
			continue
		}
		out = append(out, marker)
	}
	return out
}
