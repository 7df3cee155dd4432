package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// watchDebounce is how long a burst of file events settles before a rerun.
const watchDebounce = 100 * time.Millisecond

// RunOptions holds options for the run command.
type RunOptions struct {
	Parallel bool
	Jobs     int
	Watch    bool
}

// StepResult is written after each step completes.
type StepResult struct {
	Step    int    `json:"step"`
	Command string `json:"command"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a navigation script against the loopback host",
		Long: `Run a YAML or JSON script of navigation commands through the full
command layer: parsing, static options, layout processors, options processing,
the command observer and a loopback host.

Every notification, host call and step result is written to stdout as a
JSON line. Components registered in leapnav.yaml supply static options, and
.star files in the processors directory are loaded as layout processors.

Steps run in order and the first failure stops the script. With --parallel
every step is dispatched concurrently and all failures are reported.`,
		Example: `  # Run a script
  leapnav run flows/compose.yaml

  # Dispatch every step concurrently, at most 4 at a time
  leapnav run flows/stress.yaml --parallel --jobs 4

  # Rerun whenever the script or a processor changes
  leapnav run flows/compose.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "Dispatch steps concurrently")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Maximum concurrent steps with --parallel (0 for no limit)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rerun when the script or processors change")

	return cmd
}

func runRun(cmd *cobra.Command, path string, opts *RunOptions) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !opts.Watch {
		return cc.runScript(ctx, path, opts)
	}
	return cc.watch(ctx, path, opts)
}

// runScript runs the script once against a fresh session.
func (c *CommandContext) runScript(ctx context.Context, path string, opts *RunOptions) error {
	script, err := ReadScript(path)
	if err != nil {
		return err
	}

	session, err := c.NewSession(c.Out)
	if err != nil {
		return err
	}

	if len(c.Cfg.DefaultOptions) > 0 {
		if err := session.Commands.SetDefaultOptions(ctx, c.Cfg.DefaultOptions); err != nil {
			return err
		}
	}

	c.Logger.Info("running script", "file", path, "steps", len(script.Steps), "parallel", opts.Parallel)
	if opts.Parallel {
		return session.runParallel(ctx, script, opts.Jobs)
	}
	return session.runSequential(ctx, script)
}

func (s *Session) runSequential(ctx context.Context, script *Script) error {
	for i, step := range script.Steps {
		if err := s.runStep(ctx, i, step); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) runParallel(ctx context.Context, script *Script, jobs int) error {
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, step := range script.Steps {
		g.Go(func() error {
			return s.runStep(ctx, i, step)
		})
	}
	return g.Wait()
}

func (s *Session) runStep(ctx context.Context, i int, step Step) error {
	result, err := step.Run(ctx, s.Commands)

	out := StepResult{Step: i, Command: step.Command, Result: result}
	if err != nil {
		out.Error = err.Error()
	}
	if encErr := json.NewEncoder(s.Out).Encode(out); encErr != nil {
		return fmt.Errorf("failed to write step result: %w", encErr)
	}

	if err != nil {
		return fmt.Errorf("step %d (%s): %w", i, step.Command, err)
	}
	return nil
}

// watch runs the script, then reruns it whenever the script file or a
// processor script changes, until ctx is cancelled.
func (c *CommandContext) watch(ctx context.Context, path string, opts *RunOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so editors that replace the file are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch script: %w", err)
	}
	if info, err := os.Stat(c.Cfg.ProcessorsDir); err == nil && info.IsDir() {
		if err := watcher.Add(c.Cfg.ProcessorsDir); err != nil {
			c.Logger.Error("failed to watch processors directory", "error", err)
		}
	}

	rerun := make(chan struct{}, 1)
	trigger := func() {
		select {
		case rerun <- struct{}{}:
		default:
		}
	}
	trigger()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-rerun:
				if err := c.runScript(gctx, path, opts); err != nil {
					c.Logger.Error("script failed", "file", path, "error", err)
				}
			}
		}
	})

	g.Go(func() error {
		target, _ := filepath.Abs(path)
		var debounceTimer *time.Timer
		defer func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
		}()

		for {
			select {
			case <-gctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				name, _ := filepath.Abs(event.Name)
				if name != target && filepath.Ext(name) != ".star" {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					c.Logger.Debug("file changed, rerunning", "file", event.Name)
					trigger()
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				c.Logger.Error("watcher error", "error", err)
			}
		}
	})

	return g.Wait()
}
