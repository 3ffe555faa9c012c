package minutes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/political-party-kit/partykit/internal/chunker"
	"github.com/political-party-kit/partykit/internal/document"
)

// ErrNoCollector is returned when prompting is requested without a Collector.
var ErrNoCollector = errors.New("metadata prompt requested but no collector configured")

// Generate transcribes, summarizes and typesets one meeting.
func (g *implGenerator) Generate(ctx context.Context, req Request) (string, error) {
	startTime := time.Now()
	meta := req.Metadata.Clone()

	if req.Prompt {
		if g.collector == nil {
			return "", ErrNoCollector
		}
		collected, err := g.collector.Collect(meta)
		if err != nil {
			return "", fmt.Errorf("collect metadata: %w", err)
		}
		meta = collected
	}

	g.logger.Info(ctx, "Starting minutes for %s", req.AudioPath)
	g.progress("Transkribiere " + req.AudioPath)

	transcript, err := g.transcriber.Transcribe(ctx, req.AudioPath, req.Language)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	transcript = strings.TrimSpace(transcript)
	g.logger.Debug(ctx, "Transcript has %d characters", len([]rune(transcript)))

	if req.TranscriptPath != "" {
		if err := writeText(req.TranscriptPath, transcript); err != nil {
			return "", fmt.Errorf("save transcript: %w", err)
		}
		g.logger.Info(ctx, "Saved transcript: %s", req.TranscriptPath)
	}

	chunks := chunker.Split(transcript, g.chunkChars)
	partials, err := g.summarizeChunks(ctx, chunks, req.PartialsDir)
	if err != nil {
		return "", err
	}

	sources := partials
	if len(sources) == 0 {
		sources = []string{transcript}
	}

	g.progress("Erstelle Gesamtprotokoll")
	final, err := g.summarizer.Consolidate(ctx, sources, meta)
	if err != nil {
		return "", fmt.Errorf("consolidate: %w", err)
	}

	if err := document.Build(final, req.OutputPath, meta, g.now()); err != nil {
		return "", fmt.Errorf("build document: %w", err)
	}

	g.logger.Info(ctx, "Minutes written to %s in %s", req.OutputPath, time.Since(startTime))
	return req.OutputPath, nil
}

func (g *implGenerator) summarizeChunks(ctx context.Context, chunks []string, partialsDir string) ([]string, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	if partialsDir != "" {
		if err := ensureDir(partialsDir); err != nil {
			return nil, fmt.Errorf("create partials dir: %w", err)
		}
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		index := i + 1
		g.progress(fmt.Sprintf("Fasse Abschnitt %d/%d zusammen", index, len(chunks)))

		summary, err := g.summarizer.SummarizeChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("summarize chunk %d/%d: %w", index, len(chunks), err)
		}
		partials = append(partials, summary)

		if partialsDir != "" {
			path := partialPath(partialsDir, index)
			if err := writeText(path, summary); err != nil {
				return nil, fmt.Errorf("save partial summary: %w", err)
			}
			g.logger.Debug(ctx, "Saved partial summary: %s", path)
		}
	}
	return partials, nil
}
