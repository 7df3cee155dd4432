package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	navcommands "github.com/leapstack-labs/leapnav/pkg/commands"
	"github.com/leapstack-labs/leapnav/pkg/core"
	"gopkg.in/yaml.v3"
)

// Document is a layout file. It holds either a single layout or, when the
// file has a top-level root, modals or overlays key, a setRoot description.
type Document struct {
	Layout *core.Layout
	Root   *core.Root
}

// ReadDocument reads a YAML or JSON layout file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument decodes a layout document. Unknown keys are rejected.
func DecodeDocument(data []byte) (*Document, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if len(probe) == 0 {
		return nil, errors.New("empty layout document")
	}

	_, hasRoot := probe["root"]
	_, hasModals := probe["modals"]
	_, hasOverlays := probe["overlays"]
	if hasRoot || hasModals || hasOverlays {
		var root core.Root
		if err := decodeStrict(data, &root); err != nil {
			return nil, err
		}
		return &Document{Root: &root}, nil
	}

	var l core.Layout
	if err := decodeStrict(data, &l); err != nil {
		return nil, err
	}
	return &Document{Layout: &l}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid layout: %w", err)
	}
	return nil
}

// Script is a list of navigation commands to run in order.
//
//	steps:
//	  - command: setRoot
//	    root: {stack: {children: [{component: {name: Inbox}}]}}
//	  - command: push
//	    componentId: Component+2
//	    layout: {component: {name: Message, passProps: {id: 7}}}
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one command of a script. Which fields apply depends on Command.
type Step struct {
	Command     string        `yaml:"command"`
	ComponentID string        `yaml:"componentId,omitempty"`
	Layout      *core.Layout  `yaml:"layout,omitempty"`
	Layouts     []core.Layout `yaml:"layouts,omitempty"`
	Root        *core.Layout  `yaml:"root,omitempty"`
	Modals      []core.Layout `yaml:"modals,omitempty"`
	Overlays    []core.Layout `yaml:"overlays,omitempty"`
	Options     core.Options  `yaml:"options,omitempty"`
	Props       any           `yaml:"props,omitempty"`
}

// ReadScript reads a YAML or JSON script file and checks every step names
// a known command.
func ReadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := decodeStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, step := range s.Steps {
		if _, err := core.ParseCommandName(step.Command); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", path, i, err)
		}
	}
	return &s, nil
}

// Run dispatches the step and returns the command's result, if any.
func (s Step) Run(ctx context.Context, c *navcommands.Commands) (any, error) {
	name, err := core.ParseCommandName(s.Command)
	if err != nil {
		return nil, err
	}

	switch name {
	case core.CommandSetRoot:
		return c.SetRoot(ctx, core.Root{Root: s.Root, Modals: s.Modals, Overlays: s.Overlays})
	case core.CommandSetDefaultOptions:
		return nil, c.SetDefaultOptions(ctx, s.Options)
	case core.CommandMergeOptions:
		return nil, c.MergeOptions(ctx, s.ComponentID, s.Options)
	case core.CommandUpdateProps:
		c.UpdateProps(s.ComponentID, s.Props, nil)
		return nil, nil
	case core.CommandShowModal:
		l, err := s.layout(name)
		if err != nil {
			return nil, err
		}
		return c.ShowModal(ctx, l)
	case core.CommandDismissModal:
		return c.DismissModal(ctx, s.ComponentID, s.Options)
	case core.CommandDismissAllModals:
		return c.DismissAllModals(ctx, s.Options)
	case core.CommandPush:
		l, err := s.layout(name)
		if err != nil {
			return nil, err
		}
		return c.Push(ctx, s.ComponentID, l)
	case core.CommandPop:
		return c.Pop(ctx, s.ComponentID, s.Options)
	case core.CommandPopTo:
		return c.PopTo(ctx, s.ComponentID, s.Options)
	case core.CommandPopToRoot:
		return c.PopToRoot(ctx, s.ComponentID, s.Options)
	case core.CommandSetStackRoot:
		return nil, c.SetStackRoot(ctx, s.ComponentID, s.Layouts)
	case core.CommandShowOverlay:
		l, err := s.layout(name)
		if err != nil {
			return nil, err
		}
		return c.ShowOverlay(ctx, l)
	case core.CommandDismissOverlay:
		return c.DismissOverlay(ctx, s.ComponentID)
	case core.CommandDismissAllOverlays:
		return nil, c.DismissAllOverlays(ctx)
	default:
		return c.GetLaunchArgs(ctx)
	}
}

func (s Step) layout(name core.CommandName) (core.Layout, error) {
	if s.Layout == nil {
		return core.Layout{}, fmt.Errorf("%s requires a layout", name)
	}
	return *s.Layout, nil
}
