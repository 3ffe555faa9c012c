package summarizer

import (
	"context"

	"github.com/political-party-kit/partykit/internal/meeting"
)

// Summarizer produces partial summaries of transcript chunks and folds them
// into the consolidated minutes.
type Summarizer interface {
	SummarizeChunk(ctx context.Context, chunk string) (string, error)
	Consolidate(ctx context.Context, partials []string, meta meeting.Metadata) (string, error)
}
