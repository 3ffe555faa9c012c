package minutes

import (
	"time"

	"github.com/political-party-kit/partykit/internal/chunker"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/summarizer"
	"github.com/political-party-kit/partykit/internal/transcriber"
)

// Options tunes a Generator. The zero value is usable.
type Options struct {
	ChunkChars int
	Collector  Collector
	// Progress receives short status messages while the pipeline runs.
	Progress func(msg string)
	Now      func() time.Time
}

type implGenerator struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	collector   Collector
	logger      logger.Logger
	chunkChars  int
	progress    func(msg string)
	now         func() time.Time
}

// New creates a Generator from its pipeline stages.
func New(tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger, opts Options) Generator {
	g := &implGenerator{
		transcriber: tr,
		summarizer:  sum,
		collector:   opts.Collector,
		logger:      log,
		chunkChars:  opts.ChunkChars,
		progress:    opts.Progress,
		now:         opts.Now,
	}
	if g.chunkChars <= 0 {
		g.chunkChars = chunker.DefaultLimit
	}
	if g.progress == nil {
		g.progress = func(string) {}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}
