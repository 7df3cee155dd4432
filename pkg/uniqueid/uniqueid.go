// Package uniqueid generates prefixed identifiers for layout nodes and commands.
package uniqueid

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Provider generates identifiers of the form "<prefix>+<unique>".
type Provider interface {
	Generate(prefix string) string
}

// Counter generates identifiers from a monotonically increasing counter.
// The zero value is ready to use and safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// NewCounter creates a counter-backed provider.
func NewCounter() *Counter {
	return &Counter{}
}

// Generate returns prefix+N where N is unique for this Counter.
func (c *Counter) Generate(prefix string) string {
	return prefix + "+" + strconv.FormatUint(c.n.Add(1), 10)
}

// Random generates identifiers from random (version 4) UUIDs.
type Random struct{}

// NewRandom creates a UUID-backed provider.
func NewRandom() Random {
	return Random{}
}

// Generate returns prefix+<uuid>.
func (Random) Generate(prefix string) string {
	return prefix + "+" + uuid.NewString()
}

// Func adapts a function to a Provider.
type Func func(prefix string) string

// Generate calls f(prefix).
func (f Func) Generate(prefix string) string {
	return f(prefix)
}

// Fixed returns a provider that always appends suffix. Used in tests and
// dry runs where stable output matters more than uniqueness.
func Fixed(suffix string) Provider {
	return Func(func(prefix string) string {
		return prefix + "+" + suffix
	})
}

// New returns the provider for a strategy name: "uuid" or "counter" (default).
func New(strategy string) Provider {
	if strategy == "uuid" {
		return NewRandom()
	}
	return NewCounter()
}
