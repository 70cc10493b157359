package learnedtree

// Stats is a point-in-time snapshot of a tree's shape and model
// accuracy, gathered by walking the leaf chain left to right.
// AvgFillRatio, AvgModelAccuracy, and GlobalModelAccuracy are
// percentages in [0, 100], matching utilization_percent,
// avg_model_accuracy, and global_model_accuracy.
type Stats struct {
	LeafCount           int
	TotalEntries        int
	TotalCapacity       int
	AvgFillRatio        float64
	TotalCompactions    int
	TotalSplits         int
	ShiftCount          int
	Height              int
	AvgModelAccuracy    float64
	GlobalModelAccuracy float64
}

// Stats walks the leaf chain once and aggregates occupancy, compaction,
// and model-accuracy figures across the whole tree.
func (t *Tree[K, V]) Stats() Stats {
	s := Stats{
		Height:      t.Height(),
		TotalSplits: t.splitCount,
		ShiftCount:  t.shiftCount,
	}

	var accuracySum float64
	var trainedLeaves int
	var totalHits, totalMisses int

	for leaf := t.leftmostLeaf(); leaf != nil; leaf = leaf.Next() {
		s.LeafCount++
		s.TotalEntries += leaf.Size()
		s.TotalCapacity += leaf.Capacity()
		s.TotalCompactions += leaf.compactCount
		totalHits += leaf.modelHits
		totalMisses += leaf.modelMisses

		if leaf.ModelTrained() {
			trainedLeaves++
			accuracySum += leaf.hitRatio()
		}
	}

	if s.TotalCapacity > 0 {
		s.AvgFillRatio = 100 * float64(s.TotalEntries) / float64(s.TotalCapacity)
	}
	if trainedLeaves > 0 {
		s.AvgModelAccuracy = 100 * accuracySum / float64(trainedLeaves)
	}
	if total := totalHits + totalMisses; total > 0 {
		s.GlobalModelAccuracy = 100 * float64(totalHits) / float64(total)
	}
	return s
}
