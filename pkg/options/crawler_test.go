package options

import (
	"testing"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClasses implements ClassLookup for testing.
type mockClasses map[string]core.ComponentClass

func (m mockClasses) GetComponentClassForName(name string) (core.ComponentClass, bool) {
	c, ok := m[name]
	return c, ok
}

func staticOptions(opts core.Options) core.OptionsFunc {
	return func(any) core.Options { return opts }
}

func TestCrawler_Crawl(t *testing.T) {
	classes := mockClasses{
		"Inbox": {Name: "Inbox", Options: staticOptions(core.Options{"topBar": map[string]any{"visible": false, "title": "Inbox"}})},
		"Plain": {Name: "Plain"},
	}

	tree := &core.LayoutNode{
		ID:   "Stack+1",
		Type: core.NodeStack,
		Data: core.NodeData{Options: core.Options{"topBar": map[string]any{"drawBehind": true}}},
		Children: []*core.LayoutNode{
			{ID: "Component+1", Type: core.NodeComponent, Data: core.NodeData{
				Name:    "Inbox",
				Options: core.Options{"topBar": map[string]any{"title": "Caller"}},
			}},
			{ID: "Component+2", Type: core.NodeComponent, Data: core.NodeData{Name: "Plain", Options: core.Options{}}},
			{ID: "Component+3", Type: core.NodeComponent, Data: core.NodeData{Name: "Unregistered"}},
		},
	}

	resolved := NewCrawler(classes).Crawl(tree)

	inbox := core.Options{"topBar": map[string]any{"visible": false, "title": "Caller"}}
	assert.Equal(t, inbox, tree.Children[0].Data.Options, "caller options win over static ones")
	assert.Equal(t, core.Options{}, tree.Children[1].Data.Options)
	assert.Equal(t, core.Options{}, tree.Children[2].Data.Options, "lookup miss means no static options")
	assert.Equal(t, core.Options{"topBar": map[string]any{"drawBehind": true}}, tree.Data.Options, "stack options untouched")

	require.Len(t, resolved, 4)
	assert.Equal(t, inbox, resolved["Component+1"])
	assert.Equal(t, tree.Data.Options, resolved["Stack+1"])
}

func TestCrawler_StaticOptionsReceivePassProps(t *testing.T) {
	var got any
	props := &struct{ Title string }{Title: "Hello"}
	classes := mockClasses{
		"Detail": {Name: "Detail", Options: func(passProps any) core.Options {
			got = passProps
			return core.Options{"topBar": map[string]any{"title": passProps.(*struct{ Title string }).Title}}
		}},
	}

	node := &core.LayoutNode{ID: "Component+1", Type: core.NodeComponent, Data: core.NodeData{Name: "Detail", PassProps: props}}
	NewCrawler(classes).Crawl(node)

	assert.Same(t, props, got)
	assert.Equal(t, core.Options{"topBar": map[string]any{"title": "Hello"}}, node.Data.Options)
}

func TestCrawler_NilLookup(t *testing.T) {
	node := &core.LayoutNode{ID: "Component+1", Type: core.NodeComponent, Data: core.NodeData{Name: "X"}}
	resolved := NewCrawler(nil).Crawl(node)
	assert.Equal(t, core.Options{}, resolved["Component+1"])
}
