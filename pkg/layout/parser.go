// Package layout turns layout descriptions into canonical node trees and
// prepares those trees for dispatch to the host.
package layout

import (
	"fmt"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/options"
	"github.com/leapstack-labs/leapnav/pkg/uniqueid"
)

// Parser converts layout descriptions into canonical node trees.
// It is stateless apart from its id provider and safe for concurrent use.
type Parser struct {
	ids uniqueid.Provider
}

// NewParser creates a parser that draws generated ids from ids.
// A nil provider falls back to a fresh counter.
func NewParser(ids uniqueid.Provider) *Parser {
	if ids == nil {
		ids = uniqueid.NewCounter()
	}
	return &Parser{ids: ids}
}

// Parse converts a single layout description.
func (p *Parser) Parse(l core.Layout) (*core.LayoutNode, error) {
	return p.parse(l, "")
}

// ParseAll converts a list of layout descriptions, preserving order.
func (p *Parser) ParseAll(layouts []core.Layout) ([]*core.LayoutNode, error) {
	return p.parseList(layouts, "")
}

// ParseRoot converts a setRoot description. The root layout is required;
// modals and overlays are optional and come back as empty slices.
func (p *Parser) ParseRoot(r core.Root) (core.LayoutRoot, error) {
	if r.Root == nil {
		return core.LayoutRoot{}, &core.ParseError{Path: "root", Message: core.ErrMissingRoot.Error(), Err: core.ErrMissingRoot}
	}
	root, err := p.parse(*r.Root, "root")
	if err != nil {
		return core.LayoutRoot{}, err
	}
	modals, err := p.parseList(r.Modals, "modals")
	if err != nil {
		return core.LayoutRoot{}, err
	}
	overlays, err := p.parseList(r.Overlays, "overlays")
	if err != nil {
		return core.LayoutRoot{}, err
	}
	return core.LayoutRoot{Root: root, Modals: modals, Overlays: overlays}, nil
}

func (p *Parser) parseList(layouts []core.Layout, path string) ([]*core.LayoutNode, error) {
	nodes := make([]*core.LayoutNode, 0, len(layouts))
	for i, l := range layouts {
		node, err := p.parse(l, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (p *Parser) parse(l core.Layout, path string) (*core.LayoutNode, error) {
	variants := l.Variants()
	switch len(variants) {
	case 0:
		return nil, &core.ParseError{Path: path, Message: "layout has no variant"}
	case 1:
	default:
		return nil, &core.ParseError{Path: path, Variants: variants, Message: "layout has more than one variant"}
	}

	switch {
	case l.Component != nil:
		return p.component(core.NodeComponent, l.Component, join(path, "component"))
	case l.ExternalComponent != nil:
		return p.component(core.NodeExternalComponent, l.ExternalComponent, join(path, "externalComponent"))
	case l.Stack != nil:
		return p.container(core.NodeStack, l.Stack.ID, l.Stack.Options, l.Stack.Children, join(path, "stack"))
	case l.BottomTabs != nil:
		return p.container(core.NodeBottomTabs, l.BottomTabs.ID, l.BottomTabs.Options, l.BottomTabs.Children, join(path, "bottomTabs"))
	case l.TopTabs != nil:
		return p.container(core.NodeTopTabs, l.TopTabs.ID, l.TopTabs.Options, l.TopTabs.Children, join(path, "topTabs"))
	default:
		return p.sideMenu(l.SideMenu, join(path, "sideMenu"))
	}
}

func (p *Parser) component(t core.NodeType, c *core.ComponentLayout, path string) (*core.LayoutNode, error) {
	if c.Name == "" {
		return nil, &core.ParseError{Path: path, Message: "component name is required"}
	}
	return &core.LayoutNode{
		ID:   p.id(c.ID, t),
		Type: t,
		Data: core.NodeData{
			Name:      c.Name,
			Options:   cloneOptions(c.Options),
			PassProps: c.PassProps,
		},
		Children: []*core.LayoutNode{},
	}, nil
}

func (p *Parser) container(t core.NodeType, id string, opts core.Options, children []core.Layout, path string) (*core.LayoutNode, error) {
	node := &core.LayoutNode{
		ID:   p.id(id, t),
		Type: t,
		Data: core.NodeData{Options: cloneOptions(opts)},
	}
	parsed, err := p.parseList(children, join(path, "children"))
	if err != nil {
		return nil, err
	}
	node.Children = parsed
	return node, nil
}

func (p *Parser) sideMenu(s *core.SideMenuLayout, path string) (*core.LayoutNode, error) {
	if s.Center == nil {
		return nil, &core.ParseError{Path: path, Message: "side menu requires a center layout"}
	}

	node := &core.LayoutNode{
		ID:       p.id(s.ID, core.NodeSideMenuRoot),
		Type:     core.NodeSideMenuRoot,
		Data:     core.NodeData{Options: cloneOptions(s.Options)},
		Children: []*core.LayoutNode{},
	}

	sides := []struct {
		layout *core.Layout
		t      core.NodeType
		key    string
	}{
		{s.Left, core.NodeSideMenuLeft, "left"},
		{s.Center, core.NodeSideMenuCenter, "center"},
		{s.Right, core.NodeSideMenuRight, "right"},
	}
	for _, side := range sides {
		if side.layout == nil {
			continue
		}
		wrapper := &core.LayoutNode{
			ID:   p.id("", side.t),
			Type: side.t,
			Data: core.NodeData{Options: core.Options{}},
		}
		child, err := p.parse(*side.layout, join(path, side.key))
		if err != nil {
			return nil, err
		}
		wrapper.Children = []*core.LayoutNode{child}
		node.Children = append(node.Children, wrapper)
	}
	return node, nil
}

// id returns explicit when set, otherwise a generated id prefixed with the
// node type.
func (p *Parser) id(explicit string, t core.NodeType) string {
	if explicit != "" {
		return explicit
	}
	return p.ids.Generate(string(t))
}

func cloneOptions(opts core.Options) core.Options {
	if opts == nil {
		return core.Options{}
	}
	return options.Clone(opts)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
