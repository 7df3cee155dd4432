// Package config provides configuration management for the leapnav CLI.
package config

import "github.com/leapstack-labs/leapnav/pkg/core"

// Config holds all CLI configuration options.
type Config struct {
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
	Verbose       bool   `koanf:"verbose"`
	OutputFormat  string `koanf:"output"`
	IDStrategy    string `koanf:"id_strategy"`
	ProcessorsDir string `koanf:"processors_dir"`

	// DefaultOptions are sent with setDefaultOptions before a script runs.
	DefaultOptions map[string]any `koanf:"default_options"`

	// AnimationDefaults are filled into animation options by the options processor.
	AnimationDefaults map[string]any `koanf:"animation_defaults"`

	// Components are registered in the component store before a script runs.
	Components []ComponentConfig `koanf:"components"`

	// LaunchArgs are returned by the loopback host's getLaunchArgs.
	LaunchArgs map[string]any `koanf:"launch_args"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// ComponentConfig registers a component with static options.
// A list is used because component names commonly contain dots.
type ComponentConfig struct {
	Name    string         `koanf:"name"`
	Options map[string]any `koanf:"options"`
}

// StaticOptions returns the component's static options function, or nil
// when it declares none.
func (c ComponentConfig) StaticOptions() core.OptionsFunc {
	if len(c.Options) == 0 {
		return nil
	}
	opts := core.Options(c.Options)
	return func(any) core.Options { return opts }
}

// Default configuration values.
const (
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultOutput        = "json"
	DefaultIDStrategy    = "counter"
	DefaultProcessorsDir = "processors"
)

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		OutputFormat:  DefaultOutput,
		IDStrategy:    DefaultIDStrategy,
		ProcessorsDir: DefaultProcessorsDir,
	}
}
