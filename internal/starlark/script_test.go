package starlark

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/leapstack-labs/leapnav/internal/testutil"
	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const titlesScript = `
def component(data, command):
    opts = data["options"]
    opts["topBar"] = {"title": {"text": data["name"]}, "command": command}
    return data
`

func loadInto(t *testing.T, src string) (*processor.Store, *testutil.CaptureHandler) {
	t.Helper()
	script, err := LoadScript("titles.star", []byte(src))
	require.NoError(t, err)

	logger, logs := testutil.NewCaptureLogger()
	store := processor.NewStore()
	script.Register(store, NewThreadPool(2, logger), logger)
	return store, logs
}

func TestScript_ProcessesNodeData(t *testing.T) {
	store, _ := loadInto(t, titlesScript)
	props := &struct{}{}

	node := &core.LayoutNode{
		ID:   "Component+1",
		Type: core.NodeComponent,
		Data: core.NodeData{Name: "Inbox", Options: core.Options{"layout": map[string]any{"orientation": []any{"portrait"}}}, PassProps: props},
	}
	processor.NewLayoutProcessor(store).Process(node, core.CommandPush)

	assert.Equal(t, "Component+1", node.ID)
	assert.Equal(t, core.Options{
		"layout": map[string]any{"orientation": []any{"portrait"}},
		"topBar": map[string]any{"title": map[string]any{"text": "Inbox"}, "command": "push"},
	}, node.Data.Options)
	assert.Same(t, props, node.Data.PassProps)
}

func TestScript_CommandScope(t *testing.T) {
	store, _ := loadInto(t, `commands = ["showModal"]`+"\n"+titlesScript)

	assert.Len(t, store.Processors(core.CommandShowModal, core.NodeComponent), 1)
	assert.Empty(t, store.Processors(core.CommandPush, core.NodeComponent))
}

func TestScript_FailureLeavesDataUnchanged(t *testing.T) {
	store, logs := loadInto(t, `
def component(data, command):
    fail("boom")
`)

	data := core.NodeData{Name: "Inbox", Options: core.Options{}}
	fns := store.Processors(core.CommandPush, core.NodeComponent)
	require.Len(t, fns, 1)

	got := fns[0](data, core.CommandPush)
	assert.Equal(t, data, got)
	assert.Equal(t, []string{"processor script failed"}, logs.Messages(slog.LevelWarn))
}

func TestScript_RenameComponent(t *testing.T) {
	store, _ := loadInto(t, `
def component(data, command):
    if data["name"] == "Legacy":
        data["name"] = "Modern"
    return data
`)
	fns := store.Processors(core.CommandSetRoot, core.NodeComponent)
	require.Len(t, fns, 1)

	got := fns[0](core.NodeData{Name: "Legacy", Options: core.Options{}}, core.CommandSetRoot)
	assert.Equal(t, "Modern", got.Name)
}

func TestScript_ConcurrentCalls(t *testing.T) {
	store, _ := loadInto(t, titlesScript)
	p := processor.NewLayoutProcessor(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			node := &core.LayoutNode{ID: "c", Type: core.NodeComponent, Data: core.NodeData{Name: "X", Options: core.Options{}}}
			p.Process(node, core.CommandPush)
			assert.Contains(t, node.Data.Options, "topBar")
		}()
	}
	wg.Wait()
}

func TestRegisterAll(t *testing.T) {
	a, err := LoadScript("a.star", []byte(titlesScript))
	require.NoError(t, err)
	b, err := LoadScript("b.star", []byte("def stack(data, command):\n    return data\n"))
	require.NoError(t, err)

	store := processor.NewStore()
	n := RegisterAll([]*Script{a, b}, store, NewThreadPool(0, nil), nil)

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, store.Count(core.NodeComponent))
	assert.Equal(t, 1, store.Count(core.NodeStack))
}
