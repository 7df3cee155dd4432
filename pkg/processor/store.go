// Package processor runs user-supplied transformations over layout trees
// before they are dispatched to the host.
//
// Processors are registered per node type, optionally scoped to a single
// command, and run in registration order. Each processor receives the data of
// one node and returns the data the next processor (and ultimately the host)
// will see.
package processor

import (
	"sync"

	"github.com/leapstack-labs/leapnav/pkg/core"
)

// Func transforms the data of one layout node for command cmd.
type Func func(data core.NodeData, cmd core.CommandName) core.NodeData

// entry is a registered processor. An empty command matches every command.
type entry struct {
	command core.CommandName
	fn      Func
}

// Store holds registered processors keyed by node type.
// Registration is expected during setup; lookups are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	byType map[core.NodeType][]entry
}

// NewStore creates an empty processor store.
func NewStore() *Store {
	return &Store{
		byType: make(map[core.NodeType][]entry),
	}
}

// Register appends a processor that runs for every command on nodes of nodeType.
func (s *Store) Register(nodeType core.NodeType, fn Func) {
	s.add(nodeType, entry{fn: fn})
}

// RegisterFor appends a processor that runs only for command cmd on nodes of nodeType.
func (s *Store) RegisterFor(cmd core.CommandName, nodeType core.NodeType, fn Func) {
	s.add(nodeType, entry{command: cmd, fn: fn})
}

// add ignores nil functions and node types the parser never produces.
func (s *Store) add(nodeType core.NodeType, e entry) {
	if e.fn == nil || !nodeType.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byType[nodeType] = append(s.byType[nodeType], e)
}

// Processors returns the processors matching cmd and nodeType in registration order.
func (s *Store) Processors(cmd core.CommandName, nodeType core.NodeType) []Func {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fns []Func
	for _, e := range s.byType[nodeType] {
		if e.command == "" || e.command == cmd {
			fns = append(fns, e.fn)
		}
	}
	return fns
}

// Count returns the number of registered processors for nodeType.
func (s *Store) Count(nodeType core.NodeType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byType[nodeType])
}
