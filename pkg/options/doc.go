// Package options normalizes options objects before they reach the host.
//
// Processor applies command-specific normalization to a caller's options and
// never mutates its input. Crawler resolves the static options declared by
// registered components and layers the caller's options on top of them.
//
// Merging is a deep merge: the override wins on conflicting leaf keys and
// nested maps (animations.push, topBar.title, ...) are merged key by key.
package options
