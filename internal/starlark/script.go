package starlark

import (
	"log/slog"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/processor"
	"go.starlark.net/starlark"
)

// Script is a loaded processor script.
type Script struct {
	// Name is derived from the file name (e.g. "titles" from "titles.star").
	Name string

	// Path is the file the script was loaded from.
	Path string

	// Commands scopes the handlers. Empty means every command.
	Commands []core.CommandName

	handlers map[core.NodeType]starlark.Callable
}

// NodeTypes returns the node types the script handles, in declaration order.
func (s *Script) NodeTypes() []core.NodeType {
	var out []core.NodeType
	for _, t := range core.NodeTypes() {
		if _, ok := s.handlers[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Register adds the script's handlers to store. Handler failures are logged
// and leave the node data unchanged.
func (s *Script) Register(store *processor.Store, pool *ThreadPool, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, t := range s.NodeTypes() {
		fn := s.processorFunc(t, pool, logger)
		if len(s.Commands) == 0 {
			store.Register(t, fn)
			continue
		}
		for _, cmd := range s.Commands {
			store.RegisterFor(cmd, t, fn)
		}
	}
}

func (s *Script) processorFunc(t core.NodeType, pool *ThreadPool, logger *slog.Logger) processor.Func {
	handler := s.handlers[t]
	threadName := s.Name + "." + HandlerName(t)

	return func(data core.NodeData, cmd core.CommandName) core.NodeData {
		out, err := s.call(handler, threadName, pool, data, cmd)
		if err != nil {
			logger.Warn("processor script failed", "script", s.Name, "node_type", t, "command", cmd, "error", err)
			return data
		}
		return out
	}
}

func (s *Script) call(handler starlark.Callable, name string, pool *ThreadPool, data core.NodeData, cmd core.CommandName) (core.NodeData, error) {
	arg, err := dataToStarlark(data)
	if err != nil {
		return data, err
	}

	thread := pool.Get(name)
	defer pool.Put(thread)

	result, err := starlark.Call(thread, handler, starlark.Tuple{arg, starlark.String(cmd)}, nil)
	if err != nil {
		return data, err
	}
	return dataFromStarlark(result, data)
}

// RegisterAll registers every script in order and returns how many
// handlers were added.
func RegisterAll(scripts []*Script, store *processor.Store, pool *ThreadPool, logger *slog.Logger) int {
	n := 0
	for _, s := range scripts {
		s.Register(store, pool, logger)
		n += len(s.handlers)
	}
	return n
}
