package freq

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumCounts(t *Table) int {
	sum := 0
	for _, e := range Sorted(t) {
		sum += e.Count
	}
	return sum
}

func TestTable_Observe(t *testing.T) {
	table := NewTable()
	table.ObserveAll("the", "cat", "sat", "the")

	assert.Equal(t, 4, table.Total())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 2, table.Count("the"))
	assert.Equal(t, 1, table.Count("cat"))
	assert.Equal(t, 0, table.Count("dog"))
}

func TestTable_CaseSensitive(t *testing.T) {
	table := NewTable()
	table.ObserveAll("Cat", "cat", "cat ")

	assert.Equal(t, 3, table.Len())
}

func TestTable_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []string{"a", "b", "c", "d", "e", "ab", "ba", ""}
	table := NewTable()

	for i := 0; i < 500; i++ {
		table.Observe(alphabet[rng.Intn(len(alphabet))])

		require.Equal(t, table.Total(), sumCounts(table))
		require.LessOrEqual(t, table.Len(), table.Total())
	}
}

func TestTable_Merge(t *testing.T) {
	a := NewTable()
	a.ObserveAll("x", "y")
	b := NewTable()
	b.ObserveAll("y", "z", "z")

	a.Merge(b)

	assert.Equal(t, 5, a.Total())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.Count("y"))
	assert.Equal(t, 2, a.Count("z"))
	assert.Equal(t, a.Total(), sumCounts(a))
}

func TestTable_FileOrderIrrelevant(t *testing.T) {
	f1 := []string{"a", "b", "a"}
	f2 := []string{"c", "a"}

	forward := NewTable()
	forward.ObserveAll(f1...)
	forward.ObserveAll(f2...)

	backward := NewTable()
	backward.ObserveAll(f2...)
	backward.ObserveAll(f1...)

	assert.Equal(t, ByFrequency(forward), ByFrequency(backward))
}

func TestSyncTable(t *testing.T) {
	s := NewSyncTable()
	var _ Observer = s

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Observe("w")
			}
		}()
	}
	wg.Wait()

	extra := NewTable()
	extra.Observe("v")
	s.Merge(extra)

	snap := s.Snapshot()
	assert.Equal(t, 801, snap.Total())
	assert.Equal(t, 800, snap.Count("w"))
	assert.Equal(t, 2, snap.Len())
}
