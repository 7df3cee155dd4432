package options

import (
	"log/slog"

	"github.com/leapstack-labs/leapnav/pkg/core"
)

// DefaultAnimationDefaults are filled into a command's animation options
// when the caller configures that animation without setting them.
var DefaultAnimationDefaults = map[string]any{"enabled": true}

// Processor normalizes options for a specific command.
// It is safe for concurrent use.
type Processor struct {
	animationDefaults map[string]any
	logger            *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithAnimationDefaults replaces the defaults filled into animation options.
func WithAnimationDefaults(defaults map[string]any) ProcessorOption {
	return func(p *Processor) {
		p.animationDefaults = normalize(defaults)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates an options processor.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		animationDefaults: normalize(DefaultAnimationDefaults),
		logger:            slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessOptions returns a normalized copy of opts for command cmd.
// The input is never modified and nil stays nil.
func (p *Processor) ProcessOptions(cmd core.CommandName, opts core.Options) core.Options {
	if opts == nil {
		return nil
	}

	out := Clone(opts)
	p.processAnimation(cmd, out)
	return out
}

// processAnimation expands animations.<key> for the command's transition.
//
//	animations: {pop: false}        -> animations: {pop: {enabled: false}}
//	animations: {pop: {waitForRender: true}} -> enabled filled from defaults
func (p *Processor) processAnimation(cmd core.CommandName, opts core.Options) {
	key := cmd.AnimationKey()
	if key == "" {
		return
	}
	animations, ok := opts["animations"].(map[string]any)
	if !ok {
		return
	}

	switch v := animations[key].(type) {
	case bool:
		animations[key] = map[string]any(Merge(p.animationDefaults, core.Options{"enabled": v}))
	case map[string]any:
		animations[key] = map[string]any(Merge(p.animationDefaults, v))
	default:
		return
	}

	p.logger.Debug("normalized animation options", "command", cmd, "animation", key)
}
