package core

// Options is a nested, partially specified options object
// (topBar, animations, layout, ...).
//
// Values should be maps, slices or scalars. Struct values are accepted but
// are copied as maps of their exported fields, keyed by json tag, so any
// unexported state is lost once options are merged or processed.
type Options map[string]any

// LaunchArgs are the arguments the host application was launched with.
type LaunchArgs map[string]any
