package options

import (
	"github.com/leapstack-labs/leapnav/pkg/core"
)

// ClassLookup finds component registrations by name.
type ClassLookup interface {
	GetComponentClassForName(name string) (core.ComponentClass, bool)
}

// Crawler resolves static component options across a layout tree.
type Crawler struct {
	classes ClassLookup
}

// NewCrawler creates a crawler backed by the given registrations.
func NewCrawler(classes ClassLookup) *Crawler {
	return &Crawler{classes: classes}
}

// Crawl walks the tree and, for every component node, layers the node's own
// options over the static options of its registered class. The resolved
// options are written back into the nodes and returned keyed by node id.
//
// Components without a registration, or whose registration declares no
// static options, keep the options they already have.
func (c *Crawler) Crawl(node *core.LayoutNode) map[string]core.Options {
	resolved := make(map[string]core.Options)
	node.Walk(func(n *core.LayoutNode, _ int) bool {
		if n.Type.IsComponent() {
			n.Data.Options = c.resolve(n)
		}
		if n.Data.Options == nil {
			n.Data.Options = core.Options{}
		}
		resolved[n.ID] = n.Data.Options
		return true
	})
	return resolved
}

func (c *Crawler) resolve(n *core.LayoutNode) core.Options {
	if c.classes == nil {
		return n.Data.Options
	}
	class, ok := c.classes.GetComponentClassForName(n.Data.Name)
	if !ok {
		return n.Data.Options
	}
	static := class.StaticOptions(n.Data.PassProps)
	if static == nil {
		return n.Data.Options
	}
	return Merge(static, n.Data.Options)
}
