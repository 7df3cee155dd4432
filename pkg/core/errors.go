package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned when a command name is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// ErrMissingRoot is returned when setRoot is called without a root layout.
var ErrMissingRoot = errors.New("setRoot requires a root layout")

// ParseError reports a layout description that cannot be normalized.
type ParseError struct {
	// Path locates the offending description, e.g. "root.stack.children[1]".
	Path string
	// Variants lists the variant keys that were set (empty when none).
	Variants []string
	// Message describes the problem.
	Message string
	// Err is an optional underlying sentinel such as ErrMissingRoot.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse layout")
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Variants) > 0 {
		fmt.Fprintf(&b, " (got %s)", strings.Join(e.Variants, ", "))
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
