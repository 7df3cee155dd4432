package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeType_Valid(t *testing.T) {
	for _, nt := range NodeTypes() {
		assert.True(t, nt.Valid(), "node type %s", nt)
	}
	assert.False(t, NodeType("SplitView").Valid())
	assert.False(t, NodeType("").Valid())
}

func TestNodeType_IsComponent(t *testing.T) {
	assert.True(t, NodeComponent.IsComponent())
	assert.True(t, NodeExternalComponent.IsComponent())
	assert.False(t, NodeStack.IsComponent())
	assert.False(t, NodeSideMenuCenter.IsComponent())
}

func TestLayoutNode_Walk(t *testing.T) {
	tree := &LayoutNode{
		ID:   "stack",
		Type: NodeStack,
		Children: []*LayoutNode{
			{ID: "a", Type: NodeComponent},
			{ID: "tabs", Type: NodeBottomTabs, Children: []*LayoutNode{
				{ID: "b", Type: NodeComponent},
			}},
			{ID: "c", Type: NodeComponent},
		},
	}

	var visited []string
	var depths []int
	tree.Walk(func(n *LayoutNode, depth int) bool {
		visited = append(visited, n.ID)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"stack", "a", "tabs", "b", "c"}, visited)
	assert.Equal(t, []int{0, 1, 1, 2, 1}, depths)

	// Returning false prunes the subtree
	visited = nil
	tree.Walk(func(n *LayoutNode, _ int) bool {
		visited = append(visited, n.ID)
		return n.Type != NodeBottomTabs
	})
	assert.Equal(t, []string{"stack", "a", "tabs", "c"}, visited)
}

func TestLayout_Variants(t *testing.T) {
	assert.Empty(t, Layout{}.Variants())
	assert.Equal(t, []string{"component"}, Layout{Component: &ComponentLayout{Name: "X"}}.Variants())
	assert.Equal(t,
		[]string{"stack", "externalComponent"},
		Layout{Stack: &StackLayout{}, ExternalComponent: &ComponentLayout{}}.Variants(),
	)
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Path: "root.stack.children[0]", Variants: []string{"component", "stack"}, Message: "layout must have exactly one variant"}
	assert.Equal(t, "parse layout at root.stack.children[0]: layout must have exactly one variant (got component, stack)", err.Error())

	err = &ParseError{Message: "component name is required"}
	assert.Equal(t, "parse layout: component name is required", err.Error())
}

func TestComponentClass_StaticOptions(t *testing.T) {
	assert.Nil(t, ComponentClass{Name: "X"}.StaticOptions(nil))

	class := ComponentClass{Name: "X", Options: func(passProps any) Options {
		props, _ := passProps.(map[string]any)
		return Options{"topBar": map[string]any{"title": props["title"]}}
	}}
	got := class.StaticOptions(map[string]any{"title": "Inbox"})
	assert.Equal(t, Options{"topBar": map[string]any{"title": "Inbox"}}, got)
}
