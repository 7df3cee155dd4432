package core

import "fmt"

// CommandName identifies a navigation command. The set is closed.
type CommandName string

// Command name constants.
const (
	CommandSetRoot            CommandName = "setRoot"
	CommandSetDefaultOptions  CommandName = "setDefaultOptions"
	CommandMergeOptions       CommandName = "mergeOptions"
	CommandUpdateProps        CommandName = "updateProps"
	CommandShowModal          CommandName = "showModal"
	CommandDismissModal       CommandName = "dismissModal"
	CommandDismissAllModals   CommandName = "dismissAllModals"
	CommandPush               CommandName = "push"
	CommandPop                CommandName = "pop"
	CommandPopTo              CommandName = "popTo"
	CommandPopToRoot          CommandName = "popToRoot"
	CommandSetStackRoot       CommandName = "setStackRoot"
	CommandShowOverlay        CommandName = "showOverlay"
	CommandDismissOverlay     CommandName = "dismissOverlay"
	CommandDismissAllOverlays CommandName = "dismissAllOverlays"
	CommandGetLaunchArgs      CommandName = "getLaunchArgs"
)

var commandNames = []CommandName{
	CommandSetRoot,
	CommandSetDefaultOptions,
	CommandMergeOptions,
	CommandUpdateProps,
	CommandShowModal,
	CommandDismissModal,
	CommandDismissAllModals,
	CommandPush,
	CommandPop,
	CommandPopTo,
	CommandPopToRoot,
	CommandSetStackRoot,
	CommandShowOverlay,
	CommandDismissOverlay,
	CommandDismissAllOverlays,
	CommandGetLaunchArgs,
}

// CommandNames returns every command name in declaration order.
func CommandNames() []CommandName {
	out := make([]CommandName, len(commandNames))
	copy(out, commandNames)
	return out
}

// ParseCommandName converts a string to a CommandName.
func ParseCommandName(s string) (CommandName, error) {
	for _, name := range commandNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// CarriesLayout reports whether the command sends a layout tree to the host.
func (c CommandName) CarriesLayout() bool {
	switch c {
	case CommandSetRoot, CommandShowModal, CommandPush, CommandSetStackRoot, CommandShowOverlay:
		return true
	default:
		return false
	}
}

// AnimationKey returns the key under options.animations that configures the
// transition performed by this command, or "" when the command has none.
func (c CommandName) AnimationKey() string {
	switch c {
	case CommandSetRoot, CommandPush, CommandShowModal, CommandDismissModal, CommandSetStackRoot, CommandPop:
		return string(c)
	case CommandPopTo, CommandPopToRoot:
		return string(CommandPop)
	case CommandDismissAllModals:
		return string(CommandDismissModal)
	default:
		return ""
	}
}
