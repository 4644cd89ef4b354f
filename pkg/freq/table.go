package freq

import "sync"

// Observer receives counted units.
type Observer interface {
	Observe(unit string)
}

// Table maps units to their occurrence counts.
// The zero value is not usable; create one with NewTable.
type Table struct {
	counts map[string]int
	total  int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Observe counts one occurrence of unit.
func (t *Table) Observe(unit string) {
	t.counts[unit]++
	t.total++
}

// ObserveAll counts every unit in units.
func (t *Table) ObserveAll(units ...string) {
	for _, u := range units {
		t.Observe(u)
	}
}

// Merge adds every count of other into t.
func (t *Table) Merge(other *Table) {
	for u, n := range other.counts {
		t.counts[u] += n
	}
	t.total += other.total
}

// Count returns how often unit was observed.
func (t *Table) Count(unit string) int {
	return t.counts[unit]
}

// Total returns the number of observed units, repeats included.
func (t *Table) Total() int {
	return t.total
}

// Len returns the number of distinct units.
func (t *Table) Len() int {
	return len(t.counts)
}

// SyncTable guards a Table with a mutex so several goroutines can observe into it.
type SyncTable struct {
	mu    sync.Mutex
	table *Table
}

// NewSyncTable creates an empty concurrency-safe table.
func NewSyncTable() *SyncTable {
	return &SyncTable{table: NewTable()}
}

// Observe counts one occurrence of unit.
func (s *SyncTable) Observe(unit string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Observe(unit)
}

// Merge adds every count of other.
func (s *SyncTable) Merge(other *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Merge(other)
}

// Snapshot returns a copy of the accumulated counts.
func (s *SyncTable) Snapshot() *Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := NewTable()
	out.Merge(s.table)
	return out
}
