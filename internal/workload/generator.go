// Package workload generates deterministic, seeded key/value data for
// exercising learnedtree.Tree in the demo CLI and benchmark suite,
// mirroring the fixed NUM_INSERTS/ORDER/LEAF_CAPACITY parameters the
// original Python benchmark used.
package workload

import (
	"fmt"
	"math/rand"
)

// Entry is one generated key/value pair.
type Entry struct {
	Key   int
	Value string
}

// Generator produces reproducible pseudo-random entries from a fixed
// seed, so repeated runs of the demo and the benchmark suite see the
// same insert order and the same search sample.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded deterministically; the same
// seed always yields the same sequence of entries.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Entries returns n entries with keys drawn uniformly from
// [1, keySpace] and values named by insertion index, matching the
// original benchmark's "val_{i}" convention.
func (g *Generator) Entries(n, keySpace int) []Entry {
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{
			Key:   g.rng.Intn(keySpace) + 1,
			Value: fmt.Sprintf("val_%d", i),
		}
	}
	return entries
}

// SampleKeys picks k keys without replacement from entries, for use as
// a search workload distinct from the insert order.
func (g *Generator) SampleKeys(entries []Entry, k int) []int {
	if k > len(entries) {
		k = len(entries)
	}
	idx := g.rng.Perm(len(entries))[:k]
	keys := make([]int, k)
	for i, j := range idx {
		keys[i] = entries[j].Key
	}
	return keys
}
