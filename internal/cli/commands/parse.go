package commands

import (
	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/layout"
	"github.com/leapstack-labs/leapnav/pkg/processor"
	"github.com/leapstack-labs/leapnav/pkg/uniqueid"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Prepare bool
	Command string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a layout file into its node tree",
		Long: `Parse a YAML or JSON layout description and print the node tree the
host would receive.

A file with a top-level root, modals or overlays key is parsed as a setRoot
description, anything else as a single layout. With --prepare the tree also
goes through static options, layout processors and options processing for
the given command, exactly as it would before dispatch.`,
		Example: `  # Print the tree as JSON
  leapnav parse layouts/inbox.yaml

  # Show it as a table
  leapnav parse layouts/inbox.yaml -o table

  # Apply processors as for a push
  leapnav parse layouts/message.yaml --prepare --command push`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Prepare, "prepare", false, "Apply static options, processors and options processing")
	cmd.Flags().StringVar(&opts.Command, "command", "", "Command to prepare for (default: setRoot or showModal)")

	_ = cmd.RegisterFlagCompletionFunc("command", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, n := range core.CommandNames() {
			if n.CarriesLayout() {
				names = append(names, string(n))
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cc := NewCommandContext(cmd)

	doc, err := ReadDocument(path)
	if err != nil {
		return err
	}

	command := core.CommandShowModal
	if doc.Root != nil {
		command = core.CommandSetRoot
	}
	if opts.Command != "" {
		if command, err = core.ParseCommandName(opts.Command); err != nil {
			return err
		}
	}

	parser := layout.NewParser(uniqueid.New(cc.Cfg.IDStrategy))

	var (
		result   any
		sections []treeSection
		nodes    []*core.LayoutNode
	)
	if doc.Root != nil {
		root, err := parser.ParseRoot(*doc.Root)
		if err != nil {
			return err
		}
		result = root
		sections = []treeSection{
			{label: "root", nodes: []*core.LayoutNode{root.Root}},
			{label: "modal", nodes: root.Modals},
			{label: "overlay", nodes: root.Overlays},
		}
		nodes = append(append([]*core.LayoutNode{root.Root}, root.Modals...), root.Overlays...)
	} else {
		node, err := parser.Parse(*doc.Layout)
		if err != nil {
			return err
		}
		result = node
		sections = []treeSection{{nodes: []*core.LayoutNode{node}}}
		nodes = []*core.LayoutNode{node}
	}

	if opts.Prepare {
		if err := cc.prepare(command, nodes); err != nil {
			return err
		}
	}

	if cc.Cfg.OutputFormat == "table" {
		renderTree(cc.Out, sections)
		return nil
	}
	return render(cc.Out, cc.Cfg.OutputFormat, result)
}

// prepare runs nodes through the same stages the command layer applies
// before dispatch, without a host.
func (c *CommandContext) prepare(cmd core.CommandName, nodes []*core.LayoutNode) error {
	scripts, err := c.LoadScripts()
	if err != nil {
		return err
	}

	components := c.newStore()
	layouts := processor.NewLayoutProcessor(c.newProcessors(scripts))
	crawler := layout.NewCrawler(components, c.newOptionsProcessor(), layout.WithCrawlerLogger(c.Logger))

	for _, n := range nodes {
		crawler.ResolveStaticOptions(n)
	}
	layouts.ProcessAll(nodes, cmd)
	crawler.CrawlAll(nodes, cmd)
	c.Logger.Debug("prepared layout", "command", cmd, "nodes", len(nodes))
	return nil
}
