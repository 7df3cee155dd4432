package commands

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/leapnav/internal/cli/config"
	"github.com/leapstack-labs/leapnav/internal/native"
	starproc "github.com/leapstack-labs/leapnav/internal/starlark"
	navcommands "github.com/leapstack-labs/leapnav/pkg/commands"
	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/leapstack-labs/leapnav/pkg/observer"
	"github.com/leapstack-labs/leapnav/pkg/options"
	"github.com/leapstack-labs/leapnav/pkg/processor"
	"github.com/leapstack-labs/leapnav/pkg/store"
	"github.com/leapstack-labs/leapnav/pkg/uniqueid"
	"github.com/spf13/cobra"
)

// threadPoolSize bounds the number of idle Starlark threads kept for reuse.
const threadPoolSize = 8

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Out    io.Writer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.GetConfig(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
		Out:    cmd.OutOrStdout(),
	}
}

// Session is a fully wired command layer running against the loopback host.
type Session struct {
	Commands *navcommands.Commands
	Store    *store.Store
	Host     *native.Loopback
	Scripts  []*starproc.Script

	// Out is the writer calls and notifications are written to. Writes are
	// serialized so lines from concurrent commands never interleave.
	Out io.Writer
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// NewSession builds the component store, processors and loopback host from
// the configuration. Host calls and notifications are written to out as
// JSON lines.
func (c *CommandContext) NewSession(out io.Writer) (*Session, error) {
	out = &syncWriter{w: out}

	scripts, err := c.LoadScripts()
	if err != nil {
		return nil, err
	}

	components := c.newStore()
	processors := c.newProcessors(scripts)

	host := native.New(
		native.WithOutput(out),
		native.WithStore(components),
		native.WithLaunchArgs(core.LaunchArgs(c.Cfg.LaunchArgs)),
		native.WithLogger(c.Logger),
	)

	obs := observer.New()
	obs.Register(observer.JSONListener(out))
	obs.Register(observer.LogListener(c.Logger))

	cmds := navcommands.New(components, host,
		navcommands.WithLogger(c.Logger),
		navcommands.WithIDProvider(uniqueid.New(c.Cfg.IDStrategy)),
		navcommands.WithOptionsProcessor(c.newOptionsProcessor()),
		navcommands.WithProcessors(processors),
		navcommands.WithObserver(obs),
	)

	c.Logger.Debug("session ready",
		"components", components.ComponentNames(),
		"listeners", obs.Len(),
		"scripts", len(scripts),
	)
	return &Session{Commands: cmds, Store: components, Host: host, Scripts: scripts, Out: out}, nil
}

// LoadScripts loads the processor scripts from the configured directory.
func (c *CommandContext) LoadScripts() ([]*starproc.Script, error) {
	scripts, err := starproc.NewLoader(c.Cfg.ProcessorsDir, c.Logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load processors: %w", err)
	}
	return scripts, nil
}

// newStore returns a component store with the configured components registered.
func (c *CommandContext) newStore() *store.Store {
	components := store.New()
	for _, comp := range c.Cfg.Components {
		components.RegisterComponent(comp.Name, comp.StaticOptions())
	}
	return components
}

func (c *CommandContext) newProcessors(scripts []*starproc.Script) *processor.Store {
	processors := processor.NewStore()
	pool := starproc.NewThreadPool(threadPoolSize, c.Logger)
	n := starproc.RegisterAll(scripts, processors, pool, c.Logger)
	c.Logger.Debug("registered layout processors", "scripts", len(scripts), "processors", n)
	return processors
}

func (c *CommandContext) newOptionsProcessor() *options.Processor {
	opts := []options.ProcessorOption{options.WithLogger(c.Logger)}
	if c.Cfg.AnimationDefaults != nil {
		opts = append(opts, options.WithAnimationDefaults(c.Cfg.AnimationDefaults))
	}
	return options.NewProcessor(opts...)
}
