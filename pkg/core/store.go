package core

// OptionsFunc returns the static options of a component type. It receives
// the props the component is being shown with.
type OptionsFunc func(passProps any) Options

// ComponentClass is a component registration as seen by the command layer.
type ComponentClass struct {
	Name string
	// Options supplies static options. Nil when the component declares none.
	Options OptionsFunc
}

// StaticOptions returns the class's static options for passProps, or nil.
func (c ComponentClass) StaticOptions(passProps any) Options {
	if c.Options == nil {
		return nil
	}
	return c.Options(passProps)
}

// ComponentInstance is a created component instance.
type ComponentInstance interface {
	IsMounted() bool
}

// Store owns component registrations, created instances and pending props.
// The command layer queries and mutates it but never owns it.
type Store interface {
	// GetComponentClassForName returns the registration for name.
	// A miss is an expected condition, not an error.
	GetComponentClassForName(name string) (ComponentClass, bool)

	// GetComponentInstance returns the instance created for componentID.
	GetComponentInstance(componentID string) (ComponentInstance, bool)

	// SetPendingProps stages props for a component that is not yet mounted.
	// Implementations must keep the exact value they are given.
	SetPendingProps(componentID string, props any)

	// UpdateProps updates the props of a component. callback may be nil.
	UpdateProps(componentID string, props any, callback func())
}
