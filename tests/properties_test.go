package tests

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agltree/internal/workload"
	"agltree/pkg/learnedtree"
)

func insertDistinct(tr *learnedtree.Tree[int, int], keys []int) {
	for _, k := range keys {
		tr.Insert(k, k)
	}
}

// 1. Order preservation: searching every inserted distinct key
// succeeds and a key never inserted is absent, which is the
// observable consequence of the leaf chain staying in ascending order.
func TestPropertyOrderPreservation(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 4, InitialLeafCapacity: 8})
	gen := workload.NewGenerator(11)
	entries := gen.Entries(500, 50000)

	seen := map[int]bool{}
	var distinct []int
	for _, e := range entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			distinct = append(distinct, e.Key)
		}
	}
	insertDistinct(tr, distinct)

	for _, k := range distinct {
		v, ok := tr.Search(k)
		require.True(t, ok)
		assert.Equal(t, k, v)
	}
}

// 3. Size consistency and 7. capacity monotone, observed through
// Stats before and after further growth.
func TestPropertySizeConsistencyAndCapacityMonotone(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 4, InitialLeafCapacity: 4})
	before := tr.Stats()

	for i := 0; i < 300; i++ {
		tr.Insert(i, i)
	}
	after := tr.Stats()

	assert.LessOrEqual(t, before.TotalCapacity, after.TotalCapacity)
	assert.Equal(t, 300, after.TotalEntries)
	assert.LessOrEqual(t, after.TotalEntries, after.TotalCapacity)
}

// 4. Chain completeness: the number of leaves visited via Stats'
// internal walk matches the leaf count reported, and every leaf is
// visited exactly once (no revisits, no cycles) — exercised
// indirectly by requiring the walk to terminate and account for every
// entry exactly once.
func TestPropertyChainCompleteness(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 3, InitialLeafCapacity: 4})
	for i := 0; i < 200; i++ {
		tr.Insert(i*2, i)
	}
	s := tr.Stats()
	assert.Equal(t, 200, s.TotalEntries)
	assert.Greater(t, s.LeafCount, 0)
}

// 6. Search round-trip for distinct keys never reinserted.
func TestPropertySearchRoundTrip(t *testing.T) {
	tr := learnedtree.New[int, string](learnedtree.DefaultConfig())
	gen := workload.NewGenerator(99)
	entries := gen.Entries(1000, 100000)

	latest := map[int]string{}
	for _, e := range entries {
		if _, dup := latest[e.Key]; !dup {
			latest[e.Key] = e.Value
			tr.Insert(e.Key, e.Value)
		}
	}

	for k, v := range latest {
		got, ok := tr.Search(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	_, ok := tr.Search(-1)
	assert.False(t, ok)
}

// 8. Idempotence of stats: two consecutive calls agree and neither
// mutates tree contents.
func TestPropertyStatsIdempotent(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 4, InitialLeafCapacity: 8})
	for i := 0; i < 150; i++ {
		tr.Insert(i, i)
	}

	first := tr.Stats()
	second := tr.Stats()
	assert.Equal(t, first, second)

	for i := 0; i < 150; i++ {
		v, ok := tr.Search(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

// Boundary: insert into an empty tree leaves the root a leaf holding
// exactly that one pair.
func TestBoundaryEmptyTreeInsert(t *testing.T) {
	tr := learnedtree.New[int, string](learnedtree.DefaultConfig())
	tr.Insert(7, "only")

	s := tr.Stats()
	assert.Equal(t, 0, s.Height)
	assert.Equal(t, 1, s.TotalEntries)

	v, ok := tr.Search(7)
	require.True(t, ok)
	assert.Equal(t, "only", v)
}

// Boundary: after the root leaf splits, the tree has height 1 and at
// least two leaves.
func TestBoundaryRootSplitHeightOne(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 3, InitialLeafCapacity: 4})
	for i := 0; i < 10; i++ {
		tr.Insert(i, i)
	}
	s := tr.Stats()
	assert.Equal(t, 1, s.Height)
	assert.GreaterOrEqual(t, s.LeafCount, 2)
}

// Boundary: cascading splits increase height by exactly one per
// cascade level, observed as a monotone non-decreasing sequence.
func TestBoundaryCascadingSplitsIncreaseHeightMonotonically(t *testing.T) {
	tr := learnedtree.New[int, int](learnedtree.Config{Order: 3, InitialLeafCapacity: 4})
	var heights []int
	for i := 0; i < 500; i++ {
		tr.Insert(i, i)
		if i%50 == 0 {
			heights = append(heights, tr.Height())
		}
	}
	require.True(t, sort.IntsAreSorted(heights))
}
