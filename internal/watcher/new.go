package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/political-party-kit/partykit/internal/logger"
)

// DefaultSettle is how long a new file may keep growing before it is handled.
const DefaultSettle = 500 * time.Millisecond

// Options tunes a Watcher.
type Options struct {
	// Filter selects the files passed to the handler. nil accepts every file.
	Filter func(path string) bool
	// Settle is the delay between detection and handling.
	Settle time.Duration
	// ProcessExisting handles files already in the directory at Start.
	ProcessExisting bool
}

// New creates a Watcher on inputDir. Files are handled one at a time in
// arrival order.
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.Filter == nil {
		opts.Filter = func(string) bool { return true }
	}
	if opts.Settle < 0 {
		opts.Settle = 0
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
		opts:     opts,
	}, nil
}
