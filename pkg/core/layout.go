package core

// NodeType identifies the kind of a node in the canonical layout tree.
type NodeType string

// Node type constants. The set is closed.
const (
	NodeComponent         NodeType = "Component"
	NodeExternalComponent NodeType = "ExternalComponent"
	NodeStack             NodeType = "Stack"
	NodeBottomTabs        NodeType = "BottomTabs"
	NodeSideMenuRoot      NodeType = "SideMenuRoot"
	NodeSideMenuLeft      NodeType = "SideMenuLeft"
	NodeSideMenuCenter    NodeType = "SideMenuCenter"
	NodeSideMenuRight     NodeType = "SideMenuRight"
	NodeTopTabs           NodeType = "TopTabs"
)

var nodeTypes = []NodeType{
	NodeComponent,
	NodeExternalComponent,
	NodeStack,
	NodeBottomTabs,
	NodeSideMenuRoot,
	NodeSideMenuLeft,
	NodeSideMenuCenter,
	NodeSideMenuRight,
	NodeTopTabs,
}

// NodeTypes returns every node type in declaration order.
func NodeTypes() []NodeType {
	out := make([]NodeType, len(nodeTypes))
	copy(out, nodeTypes)
	return out
}

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	for _, nt := range nodeTypes {
		if nt == t {
			return true
		}
	}
	return false
}

// IsComponent reports whether nodes of this type render a registered component.
func (t NodeType) IsComponent() bool {
	return t == NodeComponent || t == NodeExternalComponent
}

// NodeData is the type-specific payload of a LayoutNode.
type NodeData struct {
	// Name is the registered component name (component nodes only).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Options is the node's options object. Never nil after parsing.
	Options Options `json:"options" yaml:"options"`

	// PassProps is handed to the Store by reference. It is never copied,
	// and is cleared from the node once staged.
	PassProps any `json:"passProps,omitempty" yaml:"passProps,omitempty"`
}

// LayoutNode is a node of the canonical layout tree.
type LayoutNode struct {
	ID       string        `json:"id" yaml:"id"`
	Type     NodeType      `json:"type" yaml:"type"`
	Data     NodeData      `json:"data" yaml:"data"`
	Children []*LayoutNode `json:"children" yaml:"children"`
}

// Walk visits n and every descendant depth-first, parents before children,
// children in order. Returning false from fn skips the node's children.
func (n *LayoutNode) Walk(fn func(node *LayoutNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *LayoutNode) walk(fn func(node *LayoutNode, depth int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// LayoutRoot is the canonical payload of a setRoot command.
type LayoutRoot struct {
	Root     *LayoutNode   `json:"root" yaml:"root"`
	Modals   []*LayoutNode `json:"modals" yaml:"modals"`
	Overlays []*LayoutNode `json:"overlays" yaml:"overlays"`
}
