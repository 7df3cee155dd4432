package layout

import (
	"log/slog"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/options"
)

// OptionsProcessor normalizes options for a command.
type OptionsProcessor interface {
	ProcessOptions(cmd core.CommandName, opts core.Options) core.Options
}

// Crawler prepares a parsed tree for the host: it resolves static
// component options, stages pending props in the Store and normalizes
// every node's options for the command.
type Crawler struct {
	store   core.Store
	static  *options.Crawler
	options OptionsProcessor
	logger  *slog.Logger
}

// CrawlerOption configures a Crawler.
type CrawlerOption func(*Crawler)

// WithCrawlerLogger sets the logger used for debug output.
func WithCrawlerLogger(logger *slog.Logger) CrawlerOption {
	return func(c *Crawler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCrawler creates a crawler over store. A nil processor leaves options
// as they are.
func NewCrawler(store core.Store, processor OptionsProcessor, opts ...CrawlerOption) *Crawler {
	c := &Crawler{
		store:   store,
		static:  options.NewCrawler(store),
		options: processor,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveStaticOptions layers each component's static options under the
// options it was described with. It runs before layout processors so they
// observe the resolved options.
func (c *Crawler) ResolveStaticOptions(node *core.LayoutNode) {
	if node == nil || c.store == nil {
		return
	}
	c.static.Crawl(node)
}

// Crawl stages pending props and normalizes options across the tree,
// mutating it in place. Children are visited in order.
func (c *Crawler) Crawl(node *core.LayoutNode, cmd core.CommandName) {
	node.Walk(func(n *core.LayoutNode, _ int) bool {
		if n.Type.IsComponent() {
			c.stageProps(n)
		}
		if c.options != nil {
			n.Data.Options = c.options.ProcessOptions(cmd, n.Data.Options)
		}
		if n.Data.Options == nil {
			n.Data.Options = core.Options{}
		}
		return true
	})
}

// CrawlAll crawls every node in order.
func (c *Crawler) CrawlAll(nodes []*core.LayoutNode, cmd core.CommandName) {
	for _, n := range nodes {
		c.Crawl(n, cmd)
	}
}

func (c *Crawler) stageProps(n *core.LayoutNode) {
	if n.Data.PassProps == nil {
		return
	}
	if c.store != nil {
		c.store.SetPendingProps(n.ID, n.Data.PassProps)
		c.logger.Debug("staged pending props", "component_id", n.ID, "name", n.Data.Name)
	}
	n.Data.PassProps = nil
}
