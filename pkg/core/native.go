package core

import "context"

// NativeCommandsSender is the boundary to the host navigation runtime.
// Every call is a single attempt; errors reach the command's caller wrapped
// with the command name. Implementations must be safe for concurrent use.
type NativeCommandsSender interface {
	SetRoot(ctx context.Context, commandID string, layout LayoutRoot) (string, error)
	SetDefaultOptions(ctx context.Context, options Options) error
	MergeOptions(ctx context.Context, componentID string, options Options) error
	ShowModal(ctx context.Context, commandID string, layout *LayoutNode) (string, error)
	DismissModal(ctx context.Context, commandID, componentID string, options Options) (string, error)
	DismissAllModals(ctx context.Context, commandID string, options Options) (string, error)
	Push(ctx context.Context, commandID, componentID string, layout *LayoutNode) (string, error)
	Pop(ctx context.Context, commandID, componentID string, options Options) (string, error)
	PopTo(ctx context.Context, commandID, componentID string, options Options) (string, error)
	PopToRoot(ctx context.Context, commandID, componentID string, options Options) (string, error)
	SetStackRoot(ctx context.Context, commandID, componentID string, layouts []*LayoutNode) error
	ShowOverlay(ctx context.Context, commandID string, layout *LayoutNode) (string, error)
	DismissOverlay(ctx context.Context, commandID, componentID string) (bool, error)
	DismissAllOverlays(ctx context.Context, commandID string) error
	GetLaunchArgs(ctx context.Context, commandID string) (LaunchArgs, error)
}
