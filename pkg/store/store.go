// Package store is an in-memory component store: registrations by name,
// created instances by component id, and props staged for components that
// have not mounted yet.
package store

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/leapstack-labs/leapnav/pkg/core"
)

// Instance is a created component.
type Instance struct {
	ID   string
	Name string

	mounted atomic.Bool

	mu    sync.Mutex
	props any
}

// IsMounted reports whether the instance is mounted.
func (i *Instance) IsMounted() bool {
	return i.mounted.Load()
}

// Mount marks the instance as mounted.
func (i *Instance) Mount() { i.mounted.Store(true) }

// Unmount marks the instance as not mounted.
func (i *Instance) Unmount() { i.mounted.Store(false) }

// Props returns the instance's current props.
func (i *Instance) Props() any {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.props
}

func (i *Instance) setProps(props any) {
	i.mu.Lock()
	i.props = props
	i.mu.Unlock()
}

// Store implements core.Store. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	// classes maps component names to registrations: "Inbox" → ComponentClass
	classes map[string]core.ComponentClass

	// instances maps component ids to created instances
	instances map[string]*Instance

	// pending holds props staged by the command layer, by component id
	pending map[string]any
}

var _ core.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		classes:   make(map[string]core.ComponentClass),
		instances: make(map[string]*Instance),
		pending:   make(map[string]any),
	}
}

// RegisterComponent registers a component name. options may be nil when the
// component declares no static options. Re-registering a name replaces it.
func (s *Store) RegisterComponent(name string, options core.OptionsFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[name] = core.ComponentClass{Name: name, Options: options}
}

// GetComponentClassForName returns the registration for name.
func (s *Store) GetComponentClassForName(name string) (core.ComponentClass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.classes[name]
	return c, ok
}

// ComponentNames returns every registered name, sorted.
func (s *Store) ComponentNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateInstance creates the instance for componentID, handing it any props
// staged for that id. The staged props are consumed.
func (s *Store) CreateInstance(componentID, name string) *Instance {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst := &Instance{ID: componentID, Name: name}
	if props, ok := s.pending[componentID]; ok {
		inst.props = props
		delete(s.pending, componentID)
	}
	s.instances[componentID] = inst
	return inst
}

// GetComponentInstance returns the instance created for componentID.
func (s *Store) GetComponentInstance(componentID string) (core.ComponentInstance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.instances[componentID]
	if !ok {
		return nil, false
	}
	return inst, true
}

// RemoveInstance forgets the instance and any props staged for componentID.
func (s *Store) RemoveInstance(componentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.instances, componentID)
	delete(s.pending, componentID)
}

// SetPendingProps stages props for componentID. The value is stored as is.
func (s *Store) SetPendingProps(componentID string, props any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[componentID] = props
}

// PendingProps returns the props staged for componentID.
func (s *Store) PendingProps(componentID string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	props, ok := s.pending[componentID]
	return props, ok
}

// UpdateProps replaces the props of componentID. When the instance exists
// its props are updated and callback is invoked; otherwise the props are
// staged for the instance to pick up and callback is not invoked.
func (s *Store) UpdateProps(componentID string, props any, callback func()) {
	s.mu.Lock()
	inst, ok := s.instances[componentID]
	if !ok {
		s.pending[componentID] = props
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	inst.setProps(props)
	if callback != nil {
		callback()
	}
}
