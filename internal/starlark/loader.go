package starlark

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"go.starlark.net/starlark"
)

// CommandsGlobal is the optional script global that scopes its handlers to
// a list of command names.
const CommandsGlobal = "commands"

// Loader scans a directory for .star processor scripts.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader for dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{dir: dir, logger: logger}
}

// Load loads every .star file in the directory, in file name order.
// A missing directory yields no scripts and no error.
func (l *Loader) Load() ([]*Script, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access processors directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("processors path is not a directory: %s", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.star"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan processors directory: %w", err)
	}

	var scripts []*Script
	for _, file := range files {
		content, err := os.ReadFile(file) //nolint:gosec // G304: path comes from Glob within the processors directory
		if err != nil {
			return nil, &LoadError{File: file, Message: fmt.Sprintf("failed to read file: %v", err)}
		}
		script, err := LoadScript(file, content)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded processor script", "file", file, "node_types", script.NodeTypes(), "commands", script.Commands)
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// LoadScript executes a script's source and collects its handlers.
// path is used for naming and error reporting only.
func LoadScript(path string, src []byte) (*Script, error) {
	name := strings.TrimSuffix(filepath.Base(path), ".star")

	thread := &starlark.Thread{
		Name:  "load:" + name,
		Print: func(_ *starlark.Thread, _ string) {},
	}

	globals, err := starlark.ExecFile(thread, path, src, nil) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("Starlark execution error: %v", err)}
	}
	// Frozen globals make handlers safe to call from concurrent threads.
	globals.Freeze()

	script := &Script{
		Name:     name,
		Path:     path,
		handlers: make(map[core.NodeType]starlark.Callable),
	}

	for _, t := range core.NodeTypes() {
		v, ok := globals[HandlerName(t)]
		if !ok {
			continue
		}
		fn, ok := v.(starlark.Callable)
		if !ok {
			return nil, &LoadError{File: path, Message: fmt.Sprintf("%s must be a function, got %s", HandlerName(t), v.Type())}
		}
		script.handlers[t] = fn
	}

	if v, ok := globals[CommandsGlobal]; ok {
		commands, err := parseCommands(v)
		if err != nil {
			return nil, &LoadError{File: path, Message: err.Error()}
		}
		script.Commands = commands
	}

	return script, nil
}

func parseCommands(v starlark.Value) ([]core.CommandName, error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of command names, got %s", CommandsGlobal, v.Type())
	}

	var out []core.CommandName
	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		s, ok := item.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("%s entries must be strings, got %s", CommandsGlobal, item.Type())
		}
		cmd, err := core.ParseCommandName(string(s))
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// HandlerName is the script function name for a node type:
// "Component" → "component", "BottomTabs" → "bottomTabs".
func HandlerName(t core.NodeType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// LoadError represents an error loading a processor script.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("processors/%s: %s", filepath.Base(e.File), e.Message)
}
