package commands

import (
	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/spf13/cobra"
)

// NewProcessorsCommand creates the processors command.
func NewProcessorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "processors",
		Short: "List layout processor scripts",
		Long: `List the .star layout processor scripts in the processors directory,
the node types each one handles and the commands it is scoped to, followed
by the number of registered handlers per node type and the components
configured with static options.`,
		Example: `  # List processors
  leapnav processors

  # As a table
  leapnav processors -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcessors(cmd)
		},
	}
}

func runProcessors(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	scripts, err := cc.LoadScripts()
	if err != nil {
		return err
	}

	rows := make([]scriptRow, 0, len(scripts))
	for _, s := range scripts {
		row := scriptRow{Name: s.Name, Path: s.Path, NodeTypes: []string{}, Commands: []string{}}
		for _, t := range s.NodeTypes() {
			row.NodeTypes = append(row.NodeTypes, string(t))
		}
		for _, c := range s.Commands {
			row.Commands = append(row.Commands, string(c))
		}
		rows = append(rows, row)
	}

	procs := cc.newProcessors(scripts)
	handlers := []handlerRow{}
	for _, t := range core.NodeTypes() {
		if n := procs.Count(t); n > 0 {
			handlers = append(handlers, handlerRow{NodeType: string(t), Handlers: n})
		}
	}
	components := cc.newStore().ComponentNames()

	if cc.Cfg.OutputFormat == "table" {
		renderScripts(cc.Out, rows)
		renderHandlers(cc.Out, handlers, components)
		return nil
	}
	return render(cc.Out, cc.Cfg.OutputFormat, processorsReport{
		Scripts:    rows,
		Handlers:   handlers,
		Components: components,
	})
}
