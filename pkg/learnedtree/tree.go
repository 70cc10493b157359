package learnedtree

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config holds the tree's two fixed knobs: the order (the most
// separators an internal node holds before it splits, and the packed
// leaf size above which a leaf splits) and the initial capacity handed
// to every freshly created leaf. Both are immutable for the tree's
// lifetime.
type Config struct {
	Order               int `validate:"gte=3"`
	InitialLeafCapacity int `validate:"gte=4"`
}

// DefaultConfig matches the parameters the reference implementation
// was benchmarked with.
func DefaultConfig() Config {
	return Config{Order: 4, InitialLeafCapacity: 16}
}

func (c Config) mustValidate() {
	if err := validator.New().Struct(c); err != nil {
		panic(fmt.Sprintf("learnedtree: invalid config: %v", err))
	}
}

// Tree is the Tree Coordinator: it owns the root pointer, descends to
// the right leaf on every operation, and handles compaction, splitting,
// and separator promotion when a leaf overflows. It holds no locks and
// is not safe for concurrent use.
type Tree[K Number, V any] struct {
	cfg  Config
	root child[K, V]

	shiftCount int
	splitCount int
	logger     *zerolog.Logger
}

// New constructs an empty tree. cfg is validated eagerly; an invalid
// Config panics rather than returning an error, since it is a
// programmer precondition, not a recoverable runtime condition.
func New[K Number, V any](cfg Config) *Tree[K, V] {
	cfg.mustValidate()
	return &Tree[K, V]{
		cfg:  cfg,
		root: leafChild[K, V](newLeaf[K, V](cfg.InitialLeafCapacity)),
	}
}

// SetLogger attaches a zerolog.Logger the tree emits Debug events to
// on retrain, compaction, and split. A nil logger (the zero value)
// silences this; the tree never logs unless a logger is attached.
func (t *Tree[K, V]) SetLogger(logger zerolog.Logger) {
	t.logger = &logger
}

func (t *Tree[K, V]) debug(event string, leafSize, leafCap int) {
	if t.logger == nil {
		return
	}
	t.logger.Debug().
		Str("event", event).
		Int("leaf_size", leafSize).
		Int("leaf_capacity", leafCap).
		Msg("learnedtree")
}

// frame is one step of the path stack recorded while descending to an
// insertion point, so that an overflowing leaf's split can be
// propagated back up through its ancestors without re-descending.
type frame[K Number, V any] struct {
	node *internalNode[K, V]
	idx  int // index of the child this frame descended through
}

// descendForInsert walks from the root to the leaf that should own
// key, recording the path of internal nodes and the child index taken
// at each.
func (t *Tree[K, V]) descendForInsert(key K) ([]frame[K, V], *Leaf[K, V]) {
	var stack []frame[K, V]
	cur := t.root
	for !cur.isLeaf() {
		idx := cur.node.routeIndex(key)
		stack = append(stack, frame[K, V]{node: cur.node, idx: idx})
		cur = cur.node.children[idx]
	}
	return stack, cur.leaf
}

// Insert adds (key, value) to the tree. Duplicate keys are permitted;
// see the Leaf documentation for how repeated keys are ordered and
// looked up.
func (t *Tree[K, V]) Insert(key K, value V) {
	stack, leaf := t.descendForInsert(key)

	if leaf.Insert(key, value) == Placed {
		t.maybeRetrain(leaf)
		return
	}

	leaf.Compact()
	t.shiftCount += leaf.Size()
	t.debug("compact", leaf.Size(), leaf.Capacity())

	placed := leaf.Insert(key, value) == Placed

	// The split threshold is the packed size against order, not
	// whether the retry above found a gap: a leaf can come out of
	// Compact still oversized relative to order even when the retry
	// succeeds, and must split regardless.
	if leaf.Size() <= t.cfg.Order {
		if !placed {
			leaf.grow()
			leaf.Insert(key, value)
		}
		return
	}

	promoted, sibling := leaf.Split()
	t.splitCount++
	t.debug("split", leaf.Size(), leaf.Capacity())

	if !placed {
		if key < promoted {
			leaf.Insert(key, value)
		} else {
			sibling.Insert(key, value)
		}
	}

	t.propagate(stack, promoted, leafChild[K, V](sibling))
}

// retrainPeriod is the unconditional retrain cadence: every Nth
// insertion on a leaf retrains its model regardless of accuracy.
const retrainPeriod = 20

// accuracyCheckPeriod is the cadence at which a leaf's hit ratio is
// checked and, if below accuracyThreshold, retrained early.
const accuracyCheckPeriod = 50

// accuracyThreshold is the hit-ratio floor below which the
// accuracy-check retrain fires.
const accuracyThreshold = 0.70

// maybeRetrain implements the leaf's periodic retrain schedule: an
// unconditional retrain every retrainPeriod insertions, plus an
// early retrain every accuracyCheckPeriod insertions if the model's
// observed hit ratio has fallen below accuracyThreshold.
func (t *Tree[K, V]) maybeRetrain(leaf *Leaf[K, V]) {
	if leaf.insertCount%retrainPeriod == 0 {
		leaf.TrainModel()
		t.debug("retrain", leaf.Size(), leaf.Capacity())
		return
	}
	if leaf.insertCount%accuracyCheckPeriod == 0 && leaf.hitRatio() < accuracyThreshold {
		leaf.TrainModel()
		t.debug("retrain", leaf.Size(), leaf.Capacity())
	}
}

// propagate walks the path stack from the leaf's immediate parent
// upward, inserting the promoted separator at each level and splitting
// any internal node whose separator count now exceeds order, creating
// a new root if the split reaches the top of the stack.
func (t *Tree[K, V]) propagate(stack []frame[K, V], promoted K, right child[K, V]) {
	for i := len(stack) - 1; i >= 0; i-- {
		f := stack[i]
		f.node.insertSeparator(f.idx, promoted, right)

		if len(f.node.separators) <= t.cfg.Order {
			return
		}

		var newRight *internalNode[K, V]
		promoted, newRight = f.node.split()
		right = nodeChild[K, V](newRight)
	}

	newRoot := newInternalNode[K, V](t.cfg.Order)
	newRoot.separators = append(newRoot.separators, promoted)
	newRoot.children = append(newRoot.children, t.root, right)
	t.root = nodeChild[K, V](newRoot)
}

// Search returns the value stored for key, if any.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	cur := t.root
	for !cur.isLeaf() {
		idx := cur.node.routeIndex(key)
		cur = cur.node.children[idx]
	}
	return cur.leaf.Lookup(key)
}

// Height returns the number of internal-node levels between the root
// and the leaves: 0 for a tree with a single leaf as its root.
func (t *Tree[K, V]) Height() int {
	height := 0
	cur := t.root
	for !cur.isLeaf() {
		height++
		cur = cur.node.children[0]
	}
	return height
}

// leftmostLeaf returns the first leaf in key order, the entry point
// for a full-chain walk (used by Stats and Dump).
func (t *Tree[K, V]) leftmostLeaf() *Leaf[K, V] {
	cur := t.root
	for !cur.isLeaf() {
		cur = cur.node.children[0]
	}
	return cur.leaf
}
