package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapnav/pkg/core"
	"gopkg.in/yaml.v3"
)

// render writes v in the configured output format. Table output is handled
// by the caller since its shape depends on the value.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// renderTree writes one row per node, indented by depth.
func renderTree(w io.Writer, sections []treeSection) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Node", "ID", "Name", "Options"})

	for i, sec := range sections {
		if i > 0 {
			t.AppendSeparator()
		}
		for _, root := range sec.nodes {
			root.Walk(func(n *core.LayoutNode, depth int) bool {
				label := strings.Repeat("  ", depth) + string(n.Type)
				if depth == 0 && sec.label != "" {
					label = sec.label + ": " + label
				}
				t.AppendRow(table.Row{label, n.ID, n.Data.Name, formatOptions(n.Data.Options)})
				return true
			})
		}
	}
	t.Render()
}

type treeSection struct {
	label string
	nodes []*core.LayoutNode
}

func formatOptions(opts core.Options) string {
	if len(opts) == 0 {
		return ""
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return fmt.Sprintf("%v", opts)
	}
	return string(b)
}

// renderScripts writes the loaded processor scripts as a table.
func renderScripts(w io.Writer, rows []scriptRow) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 processors)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Script", "Node Types", "Commands", "Path"})
	for _, r := range rows {
		commands := strings.Join(r.Commands, ", ")
		if commands == "" {
			commands = "(all)"
		}
		t.AppendRow(table.Row{r.Name, strings.Join(r.NodeTypes, ", "), commands, r.Path})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d processors)\n", len(rows))
}

// renderHandlers writes the registered handler count per node type and the
// configured component names.
func renderHandlers(w io.Writer, handlers []handlerRow, components []string) {
	if len(handlers) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Node Type", "Handlers"})
		for _, h := range handlers {
			t.AppendRow(table.Row{h.NodeType, h.Handlers})
		}
		t.Render()
	}

	if len(components) == 0 {
		_, _ = fmt.Fprintln(w, "components: (none)")
		return
	}
	_, _ = fmt.Fprintf(w, "components: %s\n", strings.Join(components, ", "))
}

type processorsReport struct {
	Scripts    []scriptRow  `json:"scripts" yaml:"scripts"`
	Handlers   []handlerRow `json:"handlers" yaml:"handlers"`
	Components []string     `json:"components" yaml:"components"`
}

type handlerRow struct {
	NodeType string `json:"nodeType" yaml:"nodeType"`
	Handlers int    `json:"handlers" yaml:"handlers"`
}

type scriptRow struct {
	Name      string   `json:"name" yaml:"name"`
	Path      string   `json:"path" yaml:"path"`
	NodeTypes []string `json:"nodeTypes" yaml:"nodeTypes"`
	Commands  []string `json:"commands" yaml:"commands"`
}
