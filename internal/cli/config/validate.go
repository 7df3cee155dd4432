package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"text", "json"}
	outputs     = []string{"json", "yaml", "table"}
	idStrategies = []string{"counter", "uuid"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q (want one of %s)", c.LogFormat, strings.Join(logFormats, ", "))
	}
	if !slices.Contains(outputs, c.OutputFormat) {
		return fmt.Errorf("invalid output %q (want one of %s)", c.OutputFormat, strings.Join(outputs, ", "))
	}
	if !slices.Contains(idStrategies, c.IDStrategy) {
		return fmt.Errorf("invalid id_strategy %q (want one of %s)", c.IDStrategy, strings.Join(idStrategies, ", "))
	}
	for i, comp := range c.Components {
		if comp.Name == "" {
			return fmt.Errorf("components[%d]: name is required", i)
		}
	}
	return nil
}

// Level returns the slog level for LogLevel. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
