// Package core defines the shared language of the LeapNav system.
//
// This package contains:
//   - Layout descriptions as written by application code (Layout, Root)
//   - The canonical layout tree (LayoutNode, LayoutRoot, NodeType)
//   - Command names and observer notification parameters
//   - Boundary contracts (Store, NativeCommandsSender)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
