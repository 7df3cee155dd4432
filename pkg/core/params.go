package core

// =============================================================================
// Observer notification parameters
// =============================================================================
//
// Each command notifies observers with one of the structs below. Field names
// and JSON keys are a contract for anything built on top of the observer.

// SetRootParams is published by setRoot.
type SetRootParams struct {
	CommandID string     `json:"commandId"`
	Layout    LayoutRoot `json:"layout"`
}

// SetDefaultOptionsParams is published by setDefaultOptions.
type SetDefaultOptionsParams struct {
	Options Options `json:"options"`
}

// MergeOptionsParams is published by mergeOptions.
type MergeOptionsParams struct {
	ComponentID string  `json:"componentId"`
	Options     Options `json:"options"`
}

// UpdatePropsParams is published by updateProps.
type UpdatePropsParams struct {
	ComponentID string `json:"componentId"`
	Props       any    `json:"props"`
}

// ShowModalParams is published by showModal.
type ShowModalParams struct {
	CommandID string      `json:"commandId"`
	Layout    *LayoutNode `json:"layout"`
}

// DismissModalParams is published by dismissModal.
type DismissModalParams struct {
	CommandID    string  `json:"commandId"`
	ComponentID  string  `json:"componentId"`
	MergeOptions Options `json:"mergeOptions"`
}

// DismissAllModalsParams is published by dismissAllModals.
type DismissAllModalsParams struct {
	CommandID    string  `json:"commandId"`
	MergeOptions Options `json:"mergeOptions"`
}

// PushParams is published by push.
type PushParams struct {
	CommandID   string      `json:"commandId"`
	ComponentID string      `json:"componentId"`
	Layout      *LayoutNode `json:"layout"`
}

// PopParams is published by pop, popTo and popToRoot.
type PopParams struct {
	CommandID    string  `json:"commandId"`
	ComponentID  string  `json:"componentId"`
	MergeOptions Options `json:"mergeOptions"`
}

// SetStackRootParams is published by setStackRoot.
type SetStackRootParams struct {
	CommandID   string        `json:"commandId"`
	ComponentID string        `json:"componentId"`
	Layout      []*LayoutNode `json:"layout"`
}

// ShowOverlayParams is published by showOverlay.
type ShowOverlayParams struct {
	CommandID string      `json:"commandId"`
	Layout    *LayoutNode `json:"layout"`
}

// DismissOverlayParams is published by dismissOverlay.
type DismissOverlayParams struct {
	CommandID   string `json:"commandId"`
	ComponentID string `json:"componentId"`
}

// DismissAllOverlaysParams is published by dismissAllOverlays.
type DismissAllOverlaysParams struct {
	CommandID string `json:"commandId"`
}

// GetLaunchArgsParams is published by getLaunchArgs.
type GetLaunchArgsParams struct {
	CommandID string `json:"commandId"`
}
