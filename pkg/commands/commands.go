// Package commands is the navigation command façade. Each operation
// normalizes its input into a canonical layout tree or processed options,
// notifies observers and dispatches to the host.
//
// Pipeline for commands that carry a layout:
//
//	command id → parse → static options → layout processors → crawl → notify → host
//
// Options-only commands route their options through the options processor
// before the host call. The host call is the only blocking step.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/layout"
	"github.com/leapstack-labs/leapnav/pkg/observer"
	"github.com/leapstack-labs/leapnav/pkg/options"
	"github.com/leapstack-labs/leapnav/pkg/processor"
	"github.com/leapstack-labs/leapnav/pkg/uniqueid"
)

// OptionsProcessor normalizes options for a command.
type OptionsProcessor interface {
	ProcessOptions(cmd core.CommandName, opts core.Options) core.Options
}

// Observer is notified once per command invocation.
type Observer interface {
	Notify(cmd core.CommandName, params any)
}

// Commands dispatches navigation commands. It holds no per-call state and
// is safe for concurrent use when its collaborators are.
//
// Host errors are not returned as-is: they are wrapped as "<command>: <err>"
// and stay matchable with errors.Is and errors.As.
type Commands struct {
	store    core.Store
	native   core.NativeCommandsSender
	ids      uniqueid.Provider
	options  OptionsProcessor
	layouts  *processor.LayoutProcessor
	observer Observer
	logger   *slog.Logger

	parser  *layout.Parser
	crawler *layout.Crawler
}

// Option configures Commands.
type Option func(*Commands)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Commands) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDProvider sets the provider for node and command ids.
func WithIDProvider(ids uniqueid.Provider) Option {
	return func(c *Commands) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithOptionsProcessor replaces the default options processor.
func WithOptionsProcessor(p OptionsProcessor) Option {
	return func(c *Commands) {
		if p != nil {
			c.options = p
		}
	}
}

// WithProcessors runs the layout processors registered in store.
func WithProcessors(store *processor.Store) Option {
	return func(c *Commands) {
		if store != nil {
			c.layouts = processor.NewLayoutProcessor(store)
		}
	}
}

// WithObserver sets the observer notified for every command.
func WithObserver(o Observer) Option {
	return func(c *Commands) {
		if o != nil {
			c.observer = o
		}
	}
}

// New creates a command façade over store and native.
func New(store core.Store, native core.NativeCommandsSender, opts ...Option) *Commands {
	c := &Commands{
		store:    store,
		native:   native,
		ids:      uniqueid.NewCounter(),
		layouts:  processor.NewLayoutProcessor(processor.NewStore()),
		observer: observer.New(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.options == nil {
		c.options = options.NewProcessor(options.WithLogger(c.logger))
	}

	c.parser = layout.NewParser(c.ids)
	c.crawler = layout.NewCrawler(store, c.options, layout.WithCrawlerLogger(c.logger))
	return c
}

// SetRoot replaces the whole navigation hierarchy. It returns the host's
// result for the new root.
func (c *Commands) SetRoot(ctx context.Context, root core.Root) (string, error) {
	commandID := c.commandID(core.CommandSetRoot)
	lr, err := c.parser.ParseRoot(root)
	if err != nil {
		return "", err
	}

	c.prepare(core.CommandSetRoot, lr.Root)
	c.prepare(core.CommandSetRoot, lr.Modals...)
	c.prepare(core.CommandSetRoot, lr.Overlays...)

	c.observer.Notify(core.CommandSetRoot, core.SetRootParams{CommandID: commandID, Layout: lr})
	result, err := c.native.SetRoot(ctx, commandID, lr)
	if err != nil {
		return "", fmt.Errorf("setRoot: %w", err)
	}
	return result, nil
}

// SetDefaultOptions sets the options every component starts from.
func (c *Commands) SetDefaultOptions(ctx context.Context, opts core.Options) error {
	processed := c.options.ProcessOptions(core.CommandSetDefaultOptions, opts)

	c.observer.Notify(core.CommandSetDefaultOptions, core.SetDefaultOptionsParams{Options: opts})
	if err := c.native.SetDefaultOptions(ctx, processed); err != nil {
		return fmt.Errorf("setDefaultOptions: %w", err)
	}
	return nil
}

// MergeOptions merges opts into a shown component's options. It warns when
// the component exists but has not mounted yet.
func (c *Commands) MergeOptions(ctx context.Context, componentID string, opts core.Options) error {
	if c.store != nil {
		if inst, ok := c.store.GetComponentInstance(componentID); ok && (inst == nil || !inst.IsMounted()) {
			c.logger.Warn(mergeOptionsWarning(componentID), "component_id", componentID)
		}
	}
	processed := c.options.ProcessOptions(core.CommandMergeOptions, opts)

	c.observer.Notify(core.CommandMergeOptions, core.MergeOptionsParams{ComponentID: componentID, Options: opts})
	if err := c.native.MergeOptions(ctx, componentID, processed); err != nil {
		return fmt.Errorf("mergeOptions: %w", err)
	}
	return nil
}

func mergeOptionsWarning(componentID string) string {
	return "Navigation.mergeOptions was invoked on component with id: " + componentID +
		" before it is mounted, this can cause UI issues and should be avoided.\n Use static options instead."
}

// UpdateProps updates a component's props through the Store. The host is
// not involved. callback may be nil.
func (c *Commands) UpdateProps(componentID string, props any, callback func()) {
	if c.store != nil {
		c.store.UpdateProps(componentID, props, callback)
	}
	c.observer.Notify(core.CommandUpdateProps, core.UpdatePropsParams{ComponentID: componentID, Props: props})
}

// ShowModal presents l modally.
func (c *Commands) ShowModal(ctx context.Context, l core.Layout) (string, error) {
	commandID := c.commandID(core.CommandShowModal)
	node, err := c.parser.Parse(l)
	if err != nil {
		return "", err
	}
	c.prepare(core.CommandShowModal, node)

	c.observer.Notify(core.CommandShowModal, core.ShowModalParams{CommandID: commandID, Layout: node})
	result, err := c.native.ShowModal(ctx, commandID, node)
	if err != nil {
		return "", fmt.Errorf("showModal: %w", err)
	}
	return result, nil
}

// DismissModal dismisses the modal containing componentID.
func (c *Commands) DismissModal(ctx context.Context, componentID string, mergeOptions core.Options) (string, error) {
	commandID := c.commandID(core.CommandDismissModal)
	processed := c.options.ProcessOptions(core.CommandDismissModal, mergeOptions)

	c.observer.Notify(core.CommandDismissModal, core.DismissModalParams{
		CommandID:    commandID,
		ComponentID:  componentID,
		MergeOptions: mergeOptions,
	})
	result, err := c.native.DismissModal(ctx, commandID, componentID, processed)
	if err != nil {
		return "", fmt.Errorf("dismissModal: %w", err)
	}
	return result, nil
}

// DismissAllModals dismisses every modal.
func (c *Commands) DismissAllModals(ctx context.Context, mergeOptions core.Options) (string, error) {
	commandID := c.commandID(core.CommandDismissAllModals)
	processed := c.options.ProcessOptions(core.CommandDismissAllModals, mergeOptions)

	c.observer.Notify(core.CommandDismissAllModals, core.DismissAllModalsParams{
		CommandID:    commandID,
		MergeOptions: mergeOptions,
	})
	result, err := c.native.DismissAllModals(ctx, commandID, processed)
	if err != nil {
		return "", fmt.Errorf("dismissAllModals: %w", err)
	}
	return result, nil
}

// Push pushes l onto the stack containing componentID.
func (c *Commands) Push(ctx context.Context, componentID string, l core.Layout) (string, error) {
	commandID := c.commandID(core.CommandPush)
	node, err := c.parser.Parse(l)
	if err != nil {
		return "", err
	}
	c.prepare(core.CommandPush, node)

	c.observer.Notify(core.CommandPush, core.PushParams{CommandID: commandID, ComponentID: componentID, Layout: node})
	result, err := c.native.Push(ctx, commandID, componentID, node)
	if err != nil {
		return "", fmt.Errorf("push: %w", err)
	}
	return result, nil
}

// Pop pops componentID off its stack.
func (c *Commands) Pop(ctx context.Context, componentID string, mergeOptions core.Options) (string, error) {
	return c.pop(ctx, core.CommandPop, componentID, mergeOptions, c.native.Pop)
}

// PopTo pops the stack until componentID is on top.
func (c *Commands) PopTo(ctx context.Context, componentID string, mergeOptions core.Options) (string, error) {
	return c.pop(ctx, core.CommandPopTo, componentID, mergeOptions, c.native.PopTo)
}

// PopToRoot pops the stack containing componentID to its first child.
func (c *Commands) PopToRoot(ctx context.Context, componentID string, mergeOptions core.Options) (string, error) {
	return c.pop(ctx, core.CommandPopToRoot, componentID, mergeOptions, c.native.PopToRoot)
}

type popFunc func(ctx context.Context, commandID, componentID string, options core.Options) (string, error)

func (c *Commands) pop(ctx context.Context, cmd core.CommandName, componentID string, mergeOptions core.Options, send popFunc) (string, error) {
	commandID := c.commandID(cmd)
	processed := c.options.ProcessOptions(cmd, mergeOptions)

	c.observer.Notify(cmd, core.PopParams{CommandID: commandID, ComponentID: componentID, MergeOptions: mergeOptions})
	result, err := send(ctx, commandID, componentID, processed)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	return result, nil
}

// SetStackRoot replaces the children of the stack containing componentID.
// Order is preserved.
func (c *Commands) SetStackRoot(ctx context.Context, componentID string, layouts []core.Layout) error {
	commandID := c.commandID(core.CommandSetStackRoot)
	nodes, err := c.parser.ParseAll(layouts)
	if err != nil {
		return err
	}
	c.prepare(core.CommandSetStackRoot, nodes...)

	c.observer.Notify(core.CommandSetStackRoot, core.SetStackRootParams{
		CommandID:   commandID,
		ComponentID: componentID,
		Layout:      nodes,
	})
	if err := c.native.SetStackRoot(ctx, commandID, componentID, nodes); err != nil {
		return fmt.Errorf("setStackRoot: %w", err)
	}
	return nil
}

// ShowOverlay shows l above the current hierarchy.
func (c *Commands) ShowOverlay(ctx context.Context, l core.Layout) (string, error) {
	commandID := c.commandID(core.CommandShowOverlay)
	node, err := c.parser.Parse(l)
	if err != nil {
		return "", err
	}
	c.prepare(core.CommandShowOverlay, node)

	c.observer.Notify(core.CommandShowOverlay, core.ShowOverlayParams{CommandID: commandID, Layout: node})
	result, err := c.native.ShowOverlay(ctx, commandID, node)
	if err != nil {
		return "", fmt.Errorf("showOverlay: %w", err)
	}
	return result, nil
}

// DismissOverlay dismisses the overlay with componentID.
func (c *Commands) DismissOverlay(ctx context.Context, componentID string) (bool, error) {
	commandID := c.commandID(core.CommandDismissOverlay)

	c.observer.Notify(core.CommandDismissOverlay, core.DismissOverlayParams{CommandID: commandID, ComponentID: componentID})
	result, err := c.native.DismissOverlay(ctx, commandID, componentID)
	if err != nil {
		return false, fmt.Errorf("dismissOverlay: %w", err)
	}
	return result, nil
}

// DismissAllOverlays dismisses every overlay.
func (c *Commands) DismissAllOverlays(ctx context.Context) error {
	commandID := c.commandID(core.CommandDismissAllOverlays)

	c.observer.Notify(core.CommandDismissAllOverlays, core.DismissAllOverlaysParams{CommandID: commandID})
	if err := c.native.DismissAllOverlays(ctx, commandID); err != nil {
		return fmt.Errorf("dismissAllOverlays: %w", err)
	}
	return nil
}

// GetLaunchArgs returns the arguments the host was launched with.
func (c *Commands) GetLaunchArgs(ctx context.Context) (core.LaunchArgs, error) {
	commandID := c.commandID(core.CommandGetLaunchArgs)

	c.observer.Notify(core.CommandGetLaunchArgs, core.GetLaunchArgsParams{CommandID: commandID})
	args, err := c.native.GetLaunchArgs(ctx, commandID)
	if err != nil {
		return nil, fmt.Errorf("getLaunchArgs: %w", err)
	}
	return args, nil
}

func (c *Commands) commandID(cmd core.CommandName) string {
	id := c.ids.Generate(string(cmd))
	c.logger.Debug("command", "name", cmd, "command_id", id)
	return id
}

// prepare runs the tree stages between parsing and notification. Each stage
// finishes for every node before the next one starts.
func (c *Commands) prepare(cmd core.CommandName, nodes ...*core.LayoutNode) {
	for _, node := range nodes {
		c.crawler.ResolveStaticOptions(node)
	}
	c.layouts.ProcessAll(nodes, cmd)
	c.crawler.CrawlAll(nodes, cmd)
}
