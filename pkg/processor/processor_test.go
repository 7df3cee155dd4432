package processor

import (
	"sync"
	"testing"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *core.LayoutNode {
	return &core.LayoutNode{
		ID:   "Stack+1",
		Type: core.NodeStack,
		Data: core.NodeData{Options: core.Options{}},
		Children: []*core.LayoutNode{
			{ID: "Component+1", Type: core.NodeComponent, Data: core.NodeData{Name: "Inbox", Options: core.Options{}}, Children: []*core.LayoutNode{}},
			{ID: "Component+2", Type: core.NodeComponent, Data: core.NodeData{Name: "Detail", Options: core.Options{}}, Children: []*core.LayoutNode{}},
		},
	}
}

func TestLayoutProcessor_NoProcessors(t *testing.T) {
	p := NewLayoutProcessor(NewStore())

	got := p.Process(sampleTree(), core.CommandPush)
	assert.Equal(t, sampleTree(), got, "tree should be unchanged")
}

func TestLayoutProcessor_NilStore(t *testing.T) {
	var p *LayoutProcessor
	tree := sampleTree()
	assert.Same(t, tree, p.Process(tree, core.CommandPush))
}

func TestLayoutProcessor_RunsInRegistrationOrder(t *testing.T) {
	store := NewStore()
	var calls []string

	store.Register(core.NodeComponent, func(data core.NodeData, cmd core.CommandName) core.NodeData {
		calls = append(calls, "first:"+data.Name+":"+string(cmd))
		data.Options = core.Options{"topBar": map[string]any{"title": data.Name}}
		return data
	})
	store.Register(core.NodeComponent, func(data core.NodeData, _ core.CommandName) core.NodeData {
		calls = append(calls, "second:"+data.Name)
		// Sees the previous processor's output
		title := data.Options["topBar"].(map[string]any)["title"]
		data.Options["seen"] = title
		return data
	})

	tree := NewLayoutProcessor(store).Process(sampleTree(), core.CommandSetRoot)

	assert.Equal(t, []string{
		"first:Inbox:setRoot",
		"second:Inbox",
		"first:Detail:setRoot",
		"second:Detail",
	}, calls)
	assert.Equal(t, "Inbox", tree.Children[0].Data.Options["seen"])
	assert.Equal(t, "Detail", tree.Children[1].Data.Options["seen"])
	assert.Equal(t, core.Options{}, tree.Data.Options, "stack has no processors")
}

func TestLayoutProcessor_PreservesIdentity(t *testing.T) {
	store := NewStore()
	store.Register(core.NodeComponent, func(core.NodeData, core.CommandName) core.NodeData {
		return core.NodeData{Name: "Replaced"}
	})

	tree := NewLayoutProcessor(store).Process(sampleTree(), core.CommandPush)

	require.Len(t, tree.Children, 2)
	assert.Equal(t, "Component+1", tree.Children[0].ID)
	assert.Equal(t, core.NodeComponent, tree.Children[0].Type)
	assert.Equal(t, "Replaced", tree.Children[0].Data.Name)
	assert.Equal(t, "Component+2", tree.Children[1].ID)
}

func TestStore_RegisterFor(t *testing.T) {
	store := NewStore()
	var order []string

	store.Register(core.NodeComponent, func(d core.NodeData, _ core.CommandName) core.NodeData {
		order = append(order, "any")
		return d
	})
	store.RegisterFor(core.CommandShowModal, core.NodeComponent, func(d core.NodeData, _ core.CommandName) core.NodeData {
		order = append(order, "showModal")
		return d
	})
	store.Register(core.NodeComponent, func(d core.NodeData, _ core.CommandName) core.NodeData {
		order = append(order, "any-2")
		return d
	})

	assert.Len(t, store.Processors(core.CommandPush, core.NodeComponent), 2)
	assert.Len(t, store.Processors(core.CommandShowModal, core.NodeComponent), 3)
	assert.Empty(t, store.Processors(core.CommandShowModal, core.NodeStack))
	assert.Equal(t, 3, store.Count(core.NodeComponent))

	node := &core.LayoutNode{ID: "Component+1", Type: core.NodeComponent}
	NewLayoutProcessor(store).Process(node, core.CommandShowModal)
	assert.Equal(t, []string{"any", "showModal", "any-2"}, order)
}

func TestStore_IgnoresInvalidRegistrations(t *testing.T) {
	noop := func(d core.NodeData, _ core.CommandName) core.NodeData { return d }

	tests := []struct {
		name     string
		nodeType core.NodeType
		fn       Func
	}{
		{name: "nil func", nodeType: core.NodeStack, fn: nil},
		{name: "unknown node type", nodeType: core.NodeType("SplitView"), fn: noop},
		{name: "empty node type", nodeType: "", fn: noop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.Register(tt.nodeType, tt.fn)
			store.RegisterFor(core.CommandPush, tt.nodeType, tt.fn)
			assert.Equal(t, 0, store.Count(tt.nodeType))
			assert.Empty(t, store.Processors(core.CommandPush, tt.nodeType))
		})
	}
}

func TestLayoutProcessor_ProcessAll(t *testing.T) {
	store := NewStore()
	store.Register(core.NodeComponent, func(d core.NodeData, _ core.CommandName) core.NodeData {
		d.Options = core.Options{"processed": true}
		return d
	})

	nodes := []*core.LayoutNode{
		{ID: "a", Type: core.NodeComponent},
		{ID: "b", Type: core.NodeComponent},
	}
	got := NewLayoutProcessor(store).ProcessAll(nodes, core.CommandSetStackRoot)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, core.Options{"processed": true}, got[1].Data.Options)
}

func TestStore_ConcurrentLookups(t *testing.T) {
	store := NewStore()
	store.Register(core.NodeComponent, func(d core.NodeData, _ core.CommandName) core.NodeData { return d })
	p := NewLayoutProcessor(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Process(sampleTree(), core.CommandPush)
		}()
	}
	wg.Wait()
}
