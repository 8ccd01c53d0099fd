//go:build !linux

package system

import "context"

// StartExitOnKey is a no-op off Linux; there is no evdev to watch.
func StartExitOnKey(ctx context.Context, log logger, onExit func()) {}
