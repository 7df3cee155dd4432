package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParseCommand(t *testing.T) {
	cmd := NewParseCommand()

	assert.Equal(t, "parse <file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"prepare", "command"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewRunCommand(t *testing.T) {
	cmd := NewRunCommand()

	assert.Equal(t, "run <script>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"parallel", "jobs", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "j", cmd.Flags().Lookup("jobs").Shorthand)
}

func TestNewProcessorsCommand(t *testing.T) {
	cmd := NewProcessorsCommand()

	assert.Equal(t, "processors", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	// --output is a global persistent flag on root, not local
	assert.Nil(t, cmd.Flags().Lookup("output"))
}
