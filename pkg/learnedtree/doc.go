// Package learnedtree implements an in-memory ordered index: a B+-tree
// whose leaves are gapped arrays with a learned linear positional model.
//
// Three pieces compose the tree:
//
//   - Leaf: a fixed-capacity slot array ("Adaptive Gapped Leaf") that
//     absorbs inserts into nearby gaps, retrains a key-to-position
//     regression periodically, and grows its own capacity when gaps
//     get expensive to maintain.
//   - internalNode: classic B+-tree routing ("Internal Routing Node") —
//     sorted separators and one more child than separator.
//   - Tree: the coordinator that descends, delegates to the leaf,
//     compacts and splits on overflow, and promotes separators upward.
//
// The tree holds no locks and supports no deletion or range scan; it is
// meant for single-threaded, insert-and-point-lookup workloads where
// keys are numeric enough for a linear model to be useful.
package learnedtree
