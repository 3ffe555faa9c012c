package executor

import "context"

// Executor runs external programs such as ffmpeg or the desktop opener.
type Executor interface {
	// Execute runs the command to completion and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Start launches the command without waiting for it to exit.
	Start(ctx context.Context, name string, args ...string) error
	// LookPath reports where name is installed.
	LookPath(name string) (string, error)
}
