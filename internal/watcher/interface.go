// Package watcher feeds recordings dropped into an inbox directory to a handler.
package watcher

import "context"

// Watcher monitors a directory until its context ends.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived file.
type EventHandler func(ctx context.Context, filePath string) error
