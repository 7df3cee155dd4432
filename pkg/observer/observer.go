// Package observer broadcasts executed navigation commands to listeners.
package observer

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/leapnav/pkg/core"
)

// Listener receives a command name and its notification params.
// Params are one of the core.*Params structs.
type Listener func(cmd core.CommandName, params any)

// CommandsObserver fans command notifications out to listeners.
type CommandsObserver struct {
	mu        sync.RWMutex
	listeners []Listener
}

// New creates an observer with no listeners.
func New() *CommandsObserver {
	return &CommandsObserver{}
}

// Register adds a listener. Listeners are called in registration order.
func (o *CommandsObserver) Register(l Listener) {
	if l == nil {
		return
	}
	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	o.mu.Unlock()
}

// Notify calls every listener synchronously with cmd and params.
// Listeners registered during a Notify are not called for it.
func (o *CommandsObserver) Notify(cmd core.CommandName, params any) {
	o.mu.RLock()
	listeners := o.listeners
	o.mu.RUnlock()

	for _, l := range listeners {
		l(cmd, params)
	}
}

// Len returns the number of registered listeners.
func (o *CommandsObserver) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

// LogListener logs every command at debug level.
func LogListener(logger *slog.Logger) Listener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(cmd core.CommandName, params any) {
		logger.Debug("command", "name", cmd, "params", params)
	}
}

// Event is the JSON line written by JSONListener.
type Event struct {
	Command core.CommandName `json:"command"`
	Params  any              `json:"params"`
}

// JSONListener writes one JSON object per command to w. Writes are
// serialized; encoding errors are dropped.
func JSONListener(w io.Writer) Listener {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	return func(cmd core.CommandName, params any) {
		mu.Lock()
		defer mu.Unlock()
		_ = enc.Encode(Event{Command: cmd, Params: params})
	}
}
