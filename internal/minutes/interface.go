// Package minutes orchestrates the pipeline from a recording to a finished
// minutes document.
package minutes

import (
	"context"

	"github.com/political-party-kit/partykit/internal/meeting"
)

// Generator runs the minutes pipeline.
type Generator interface {
	// Generate produces the document described by req and returns its path.
	Generate(ctx context.Context, req Request) (string, error)
}

// Collector asks the user to review and complete meeting metadata.
type Collector interface {
	Collect(meta meeting.Metadata) (meeting.Metadata, error)
}

// Request describes a single pipeline run.
type Request struct {
	AudioPath  string
	OutputPath string
	Language   string
	Metadata   meeting.Metadata

	// Prompt runs the Collector before transcription.
	Prompt bool
	// TranscriptPath, when set, receives the raw transcript.
	TranscriptPath string
	// PartialsDir, when set, receives one teil_NN.md file per chunk summary.
	PartialsDir string
}
