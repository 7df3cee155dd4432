// Package native provides a loopback host for the command layer. It records
// every call as a JSON line, mounts the components it is shown into a
// component store, and answers the way a real host would.
package native

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/store"
)

// Call is one recorded host call.
type Call struct {
	Method      string       `json:"native"`
	CommandID   string       `json:"commandId,omitempty"`
	ComponentID string       `json:"componentId,omitempty"`
	Layout      any          `json:"layout,omitempty"`
	Options     core.Options `json:"options,omitempty"`
}

// Loopback implements core.NativeCommandsSender in process.
// It is safe for concurrent use.
type Loopback struct {
	mu       sync.Mutex
	enc      *json.Encoder
	calls    []Call
	store    *store.Store
	overlays map[string]bool
	failures map[string]error
	args     core.LaunchArgs
	logger   *slog.Logger
}

var _ core.NativeCommandsSender = (*Loopback)(nil)

// Option configures a Loopback.
type Option func(*Loopback)

// WithOutput writes every call to w as a JSON line.
func WithOutput(w io.Writer) Option {
	return func(l *Loopback) {
		if w != nil {
			l.enc = json.NewEncoder(w)
		}
	}
}

// WithStore mounts shown components into s.
func WithStore(s *store.Store) Option {
	return func(l *Loopback) { l.store = s }
}

// WithLaunchArgs sets the value returned by GetLaunchArgs.
func WithLaunchArgs(args core.LaunchArgs) Option {
	return func(l *Loopback) { l.args = args }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loopback) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loopback host.
func New(opts ...Option) *Loopback {
	l := &Loopback{
		overlays: make(map[string]bool),
		failures: make(map[string]error),
		args:     core.LaunchArgs{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FailOn makes every later call to method return err.
func (l *Loopback) FailOn(method string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[method] = err
}

// Calls returns a copy of the recorded calls.
func (l *Loopback) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Call, len(l.calls))
	copy(out, l.calls)
	return out
}

func (l *Loopback) record(ctx context.Context, c Call) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, c)
	if l.enc != nil {
		if err := l.enc.Encode(c); err != nil {
			l.logger.Warn("failed to write native call", "method", c.Method, "error", err)
		}
	}
	l.logger.Debug("native call", "method", c.Method, "command_id", c.CommandID)
	return l.failures[c.Method]
}

// mount creates and mounts an instance for every component in the trees.
func (l *Loopback) mount(nodes ...*core.LayoutNode) {
	if l.store == nil {
		return
	}
	for _, n := range nodes {
		n.Walk(func(node *core.LayoutNode, _ int) bool {
			if node.Type.IsComponent() {
				l.store.CreateInstance(node.ID, node.Data.Name).Mount()
			}
			return true
		})
	}
}

func (l *Loopback) SetRoot(ctx context.Context, commandID string, layout core.LayoutRoot) (string, error) {
	if err := l.record(ctx, Call{Method: "setRoot", CommandID: commandID, Layout: layout}); err != nil {
		return "", err
	}
	l.mount(layout.Root)
	l.mount(layout.Modals...)
	l.mount(layout.Overlays...)

	l.mu.Lock()
	l.overlays = make(map[string]bool)
	for _, o := range layout.Overlays {
		l.overlays[o.ID] = true
	}
	l.mu.Unlock()

	if layout.Root == nil {
		return "", nil
	}
	return layout.Root.ID, nil
}

func (l *Loopback) SetDefaultOptions(ctx context.Context, options core.Options) error {
	return l.record(ctx, Call{Method: "setDefaultOptions", Options: options})
}

func (l *Loopback) MergeOptions(ctx context.Context, componentID string, options core.Options) error {
	return l.record(ctx, Call{Method: "mergeOptions", ComponentID: componentID, Options: options})
}

func (l *Loopback) ShowModal(ctx context.Context, commandID string, layout *core.LayoutNode) (string, error) {
	if err := l.record(ctx, Call{Method: "showModal", CommandID: commandID, Layout: layout}); err != nil {
		return "", err
	}
	l.mount(layout)
	return layout.ID, nil
}

func (l *Loopback) DismissModal(ctx context.Context, commandID, componentID string, options core.Options) (string, error) {
	if err := l.record(ctx, Call{Method: "dismissModal", CommandID: commandID, ComponentID: componentID, Options: options}); err != nil {
		return "", err
	}
	return componentID, nil
}

func (l *Loopback) DismissAllModals(ctx context.Context, commandID string, options core.Options) (string, error) {
	if err := l.record(ctx, Call{Method: "dismissAllModals", CommandID: commandID, Options: options}); err != nil {
		return "", err
	}
	return commandID, nil
}

func (l *Loopback) Push(ctx context.Context, commandID, componentID string, layout *core.LayoutNode) (string, error) {
	if err := l.record(ctx, Call{Method: "push", CommandID: commandID, ComponentID: componentID, Layout: layout}); err != nil {
		return "", err
	}
	l.mount(layout)
	return layout.ID, nil
}

func (l *Loopback) Pop(ctx context.Context, commandID, componentID string, options core.Options) (string, error) {
	return l.pop(ctx, "pop", commandID, componentID, options)
}

func (l *Loopback) PopTo(ctx context.Context, commandID, componentID string, options core.Options) (string, error) {
	return l.pop(ctx, "popTo", commandID, componentID, options)
}

func (l *Loopback) PopToRoot(ctx context.Context, commandID, componentID string, options core.Options) (string, error) {
	return l.pop(ctx, "popToRoot", commandID, componentID, options)
}

func (l *Loopback) pop(ctx context.Context, method, commandID, componentID string, options core.Options) (string, error) {
	if err := l.record(ctx, Call{Method: method, CommandID: commandID, ComponentID: componentID, Options: options}); err != nil {
		return "", err
	}
	return componentID, nil
}

func (l *Loopback) SetStackRoot(ctx context.Context, commandID, componentID string, layouts []*core.LayoutNode) error {
	if err := l.record(ctx, Call{Method: "setStackRoot", CommandID: commandID, ComponentID: componentID, Layout: layouts}); err != nil {
		return err
	}
	l.mount(layouts...)
	return nil
}

func (l *Loopback) ShowOverlay(ctx context.Context, commandID string, layout *core.LayoutNode) (string, error) {
	if err := l.record(ctx, Call{Method: "showOverlay", CommandID: commandID, Layout: layout}); err != nil {
		return "", err
	}
	l.mount(layout)

	l.mu.Lock()
	l.overlays[layout.ID] = true
	l.mu.Unlock()
	return layout.ID, nil
}

// DismissOverlay reports whether componentID was a shown overlay.
func (l *Loopback) DismissOverlay(ctx context.Context, commandID, componentID string) (bool, error) {
	if err := l.record(ctx, Call{Method: "dismissOverlay", CommandID: commandID, ComponentID: componentID}); err != nil {
		return false, err
	}

	l.mu.Lock()
	shown := l.overlays[componentID]
	delete(l.overlays, componentID)
	l.mu.Unlock()

	if shown && l.store != nil {
		l.store.RemoveInstance(componentID)
	}
	return shown, nil
}

func (l *Loopback) DismissAllOverlays(ctx context.Context, commandID string) error {
	if err := l.record(ctx, Call{Method: "dismissAllOverlays", CommandID: commandID}); err != nil {
		return err
	}

	l.mu.Lock()
	ids := make([]string, 0, len(l.overlays))
	for id := range l.overlays {
		ids = append(ids, id)
	}
	l.overlays = make(map[string]bool)
	l.mu.Unlock()

	if l.store != nil {
		for _, id := range ids {
			l.store.RemoveInstance(id)
		}
	}
	return nil
}

func (l *Loopback) GetLaunchArgs(ctx context.Context, commandID string) (core.LaunchArgs, error) {
	if err := l.record(ctx, Call{Method: "getLaunchArgs", CommandID: commandID}); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.args, nil
}
