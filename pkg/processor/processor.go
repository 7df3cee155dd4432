package processor

import (
	"github.com/leapstack-labs/leapnav/pkg/core"
)

// LayoutProcessor applies the processors of a Store to layout trees.
type LayoutProcessor struct {
	store *Store
}

// NewLayoutProcessor creates a processor over store.
func NewLayoutProcessor(store *Store) *LayoutProcessor {
	return &LayoutProcessor{store: store}
}

// Process runs the matching processors on node and every descendant, parents
// before children, and returns node. Processors may replace a node's data but
// never its id, type or children. With no processors registered the tree is
// returned untouched.
func (p *LayoutProcessor) Process(node *core.LayoutNode, cmd core.CommandName) *core.LayoutNode {
	if p == nil || p.store == nil {
		return node
	}
	node.Walk(func(n *core.LayoutNode, _ int) bool {
		for _, fn := range p.store.Processors(cmd, n.Type) {
			n.Data = fn(n.Data, cmd)
		}
		return true
	})
	return node
}

// ProcessAll runs Process over each node in order.
func (p *LayoutProcessor) ProcessAll(nodes []*core.LayoutNode, cmd core.CommandName) []*core.LayoutNode {
	for _, n := range nodes {
		p.Process(n, cmd)
	}
	return nodes
}
