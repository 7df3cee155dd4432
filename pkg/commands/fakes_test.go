package commands

import (
	"context"
	"sync"

	"github.com/leapstack-labs/leapnav/pkg/core"
)

// nativeCall is one recorded host call.
type nativeCall struct {
	method string
	args   []any
}

// mockNative implements core.NativeCommandsSender and records every call.
type mockNative struct {
	mu         sync.Mutex
	calls      []nativeCall
	err        error
	launchArgs core.LaunchArgs
}

func (m *mockNative) record(method string, args ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, nativeCall{method: method, args: args})
	return m.err
}

func (m *mockNative) Calls() []nativeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]nativeCall, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *mockNative) last() nativeCall {
	calls := m.Calls()
	if len(calls) == 0 {
		return nativeCall{}
	}
	return calls[len(calls)-1]
}

func (m *mockNative) SetRoot(_ context.Context, commandID string, layout core.LayoutRoot) (string, error) {
	if err := m.record("setRoot", commandID, layout); err != nil {
		return "", err
	}
	return layout.Root.ID, nil
}

func (m *mockNative) SetDefaultOptions(_ context.Context, options core.Options) error {
	return m.record("setDefaultOptions", options)
}

func (m *mockNative) MergeOptions(_ context.Context, componentID string, options core.Options) error {
	return m.record("mergeOptions", componentID, options)
}

func (m *mockNative) ShowModal(_ context.Context, commandID string, layout *core.LayoutNode) (string, error) {
	if err := m.record("showModal", commandID, layout); err != nil {
		return "", err
	}
	return layout.ID, nil
}

func (m *mockNative) DismissModal(_ context.Context, commandID, componentID string, options core.Options) (string, error) {
	if err := m.record("dismissModal", commandID, componentID, options); err != nil {
		return "", err
	}
	return componentID, nil
}

func (m *mockNative) DismissAllModals(_ context.Context, commandID string, options core.Options) (string, error) {
	if err := m.record("dismissAllModals", commandID, options); err != nil {
		return "", err
	}
	return commandID, nil
}

func (m *mockNative) Push(_ context.Context, commandID, componentID string, layout *core.LayoutNode) (string, error) {
	if err := m.record("push", commandID, componentID, layout); err != nil {
		return "", err
	}
	return layout.ID, nil
}

func (m *mockNative) Pop(_ context.Context, commandID, componentID string, options core.Options) (string, error) {
	if err := m.record("pop", commandID, componentID, options); err != nil {
		return "", err
	}
	return componentID, nil
}

func (m *mockNative) PopTo(_ context.Context, commandID, componentID string, options core.Options) (string, error) {
	if err := m.record("popTo", commandID, componentID, options); err != nil {
		return "", err
	}
	return componentID, nil
}

func (m *mockNative) PopToRoot(_ context.Context, commandID, componentID string, options core.Options) (string, error) {
	if err := m.record("popToRoot", commandID, componentID, options); err != nil {
		return "", err
	}
	return componentID, nil
}

func (m *mockNative) SetStackRoot(_ context.Context, commandID, componentID string, layouts []*core.LayoutNode) error {
	return m.record("setStackRoot", commandID, componentID, layouts)
}

func (m *mockNative) ShowOverlay(_ context.Context, commandID string, layout *core.LayoutNode) (string, error) {
	if err := m.record("showOverlay", commandID, layout); err != nil {
		return "", err
	}
	return layout.ID, nil
}

func (m *mockNative) DismissOverlay(_ context.Context, commandID, componentID string) (bool, error) {
	if err := m.record("dismissOverlay", commandID, componentID); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockNative) DismissAllOverlays(_ context.Context, commandID string) error {
	return m.record("dismissAllOverlays", commandID)
}

func (m *mockNative) GetLaunchArgs(_ context.Context, commandID string) (core.LaunchArgs, error) {
	if err := m.record("getLaunchArgs", commandID); err != nil {
		return nil, err
	}
	return m.launchArgs, nil
}

// mockInstance implements core.ComponentInstance.
type mockInstance struct {
	mounted bool
}

func (i mockInstance) IsMounted() bool { return i.mounted }

type propsUpdate struct {
	componentID string
	props       any
}

// mockStore implements core.Store.
type mockStore struct {
	mu        sync.Mutex
	classes   map[string]core.ComponentClass
	instances map[string]core.ComponentInstance
	pending   map[string]any
	updates   []propsUpdate
}

func newMockStore() *mockStore {
	return &mockStore{
		classes:   map[string]core.ComponentClass{},
		instances: map[string]core.ComponentInstance{},
		pending:   map[string]any{},
	}
}

func (m *mockStore) GetComponentClassForName(name string) (core.ComponentClass, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.classes[name]
	return c, ok
}

func (m *mockStore) GetComponentInstance(componentID string) (core.ComponentInstance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.instances[componentID]
	return i, ok
}

func (m *mockStore) SetPendingProps(componentID string, props any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[componentID] = props
}

func (m *mockStore) UpdateProps(componentID string, props any, callback func()) {
	m.mu.Lock()
	m.updates = append(m.updates, propsUpdate{componentID: componentID, props: props})
	m.mu.Unlock()
	if callback != nil {
		callback()
	}
}

// notification is one recorded observer call.
type notification struct {
	cmd    core.CommandName
	params any
}

// recordingObserver records notifications.
type recordingObserver struct {
	mu    sync.Mutex
	calls []notification
}

func (r *recordingObserver) Notify(cmd core.CommandName, params any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, notification{cmd: cmd, params: params})
}

func (r *recordingObserver) Calls() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notification, len(r.calls))
	copy(out, r.calls)
	return out
}

// optionsCall is one recorded ProcessOptions call.
type optionsCall struct {
	cmd  core.CommandName
	opts core.Options
}

// recordingOptions implements OptionsProcessor. It records every call and
// returns a marker map in place of processed options.
type recordingOptions struct {
	mu    sync.Mutex
	calls []optionsCall
}

func (r *recordingOptions) ProcessOptions(cmd core.CommandName, opts core.Options) core.Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, optionsCall{cmd: cmd, opts: opts})
	return core.Options{"processedFor": string(cmd)}
}

func (r *recordingOptions) Calls() []optionsCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]optionsCall, len(r.calls))
	copy(out, r.calls)
	return out
}
