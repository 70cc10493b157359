package learnedtree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the tree's shape (separators at each internal level,
// size/capacity/state at each leaf) as an indented tree string, for
// debugging and the demo CLI.
func (t *Tree[K, V]) Dump() string {
	root := tp.New()
	dumpChild(root, t.root)
	return root.String()
}

func dumpChild[K Number, V any](p tp.Tree, c child[K, V]) {
	if c.isLeaf() {
		p.AddNode(leafLabel(c.leaf))
		return
	}
	branch := p.AddBranch(fmt.Sprintf("node(separators=%v)", c.node.separators))
	for _, ch := range c.node.children {
		dumpChild(branch, ch)
	}
}

func leafLabel[K Number, V any](l *Leaf[K, V]) string {
	return fmt.Sprintf("leaf(size=%d/%d state=%s)", l.Size(), l.Capacity(), l.State())
}
