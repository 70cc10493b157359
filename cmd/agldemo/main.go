// cmd/agldemo/main.go
//
// agldemo - drives a learnedtree.Tree through a seeded insert/search
// workload and prints its resulting shape and model accuracy.
//
// Usage:
//
//	agldemo [-inserts N] [-order N] [-leaf-capacity N] [-seed N] [-dump]
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"agltree/internal/workload"
	"agltree/pkg/learnedtree"
)

func main() {
	inserts := flag.Int("inserts", 2000, "number of keys to insert")
	order := flag.Int("order", 4, "max separators per internal node (also the leaf split size)")
	leafCapacity := flag.Int("leaf-capacity", 16, "initial leaf capacity")
	keySpace := flag.Int("key-space", 10000, "upper bound of the random key range")
	searchSample := flag.Int("search-sample", 200, "number of keys to sample for search timing")
	seed := flag.Int64("seed", 42, "PRNG seed for the generated workload")
	dump := flag.Bool("dump", false, "print the tree shape after loading")
	verbose := flag.Bool("verbose", false, "emit debug-level lifecycle logs")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cfg := learnedtree.Config{Order: *order, InitialLeafCapacity: *leafCapacity}
	tree := learnedtree.New[int, string](cfg)
	tree.SetLogger(logger)

	gen := workload.NewGenerator(*seed)
	entries := gen.Entries(*inserts, *keySpace)

	start := time.Now()
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	insertElapsed := time.Since(start)

	searchKeys := gen.SampleKeys(entries, *searchSample)
	start = time.Now()
	hits := 0
	for _, k := range searchKeys {
		if _, ok := tree.Search(k); ok {
			hits++
		}
	}
	searchElapsed := time.Since(start)

	s := tree.Stats()
	logger.Info().
		Int("inserts", *inserts).
		Dur("insert_elapsed", insertElapsed).
		Int("search_sample", len(searchKeys)).
		Int("search_hits", hits).
		Dur("search_elapsed", searchElapsed).
		Int("height", s.Height).
		Int("leaf_count", s.LeafCount).
		Float64("avg_fill_ratio", s.AvgFillRatio).
		Int("total_compactions", s.TotalCompactions).
		Int("total_splits", s.TotalSplits).
		Int("shift_count", s.ShiftCount).
		Float64("avg_model_accuracy", s.AvgModelAccuracy).
		Float64("global_model_accuracy", s.GlobalModelAccuracy).
		Msg("workload complete")

	if *dump {
		os.Stdout.WriteString(tree.Dump())
	}
}
