package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandName(t *testing.T) {
	for _, name := range CommandNames() {
		got, err := ParseCommandName(string(name))
		require.NoError(t, err, "command %s", name)
		assert.Equal(t, name, got)
	}

	_, err := ParseCommandName("teleport")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand), "expected ErrUnknownCommand, got %v", err)
	assert.Contains(t, err.Error(), `"teleport"`)
}

func TestCommandNames_Complete(t *testing.T) {
	names := CommandNames()
	assert.Len(t, names, 16)

	// Returned slice is a copy
	names[0] = "mutated"
	assert.Equal(t, CommandSetRoot, CommandNames()[0])
}

func TestCommandName_CarriesLayout(t *testing.T) {
	withLayout := map[CommandName]bool{
		CommandSetRoot:      true,
		CommandShowModal:    true,
		CommandPush:         true,
		CommandSetStackRoot: true,
		CommandShowOverlay:  true,
	}
	for _, name := range CommandNames() {
		assert.Equal(t, withLayout[name], name.CarriesLayout(), "command %s", name)
	}
}

func TestCommandName_AnimationKey(t *testing.T) {
	tests := []struct {
		command CommandName
		want    string
	}{
		{CommandPush, "push"},
		{CommandPop, "pop"},
		{CommandPopTo, "pop"},
		{CommandPopToRoot, "pop"},
		{CommandDismissModal, "dismissModal"},
		{CommandDismissAllModals, "dismissModal"},
		{CommandShowModal, "showModal"},
		{CommandSetRoot, "setRoot"},
		{CommandSetStackRoot, "setStackRoot"},
		{CommandMergeOptions, ""},
		{CommandDismissOverlay, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.command), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.command.AnimationKey())
		})
	}
}
