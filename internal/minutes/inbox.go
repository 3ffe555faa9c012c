package minutes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/meeting"
)

// Inbox turns recordings dropped into a directory into finished minutes.
type Inbox struct {
	generator   Generator
	logger      logger.Logger
	outputDir   string
	archivedDir string
	language    string
	metadata    meeting.Metadata
}

// NewInbox creates an Inbox writing documents to outputDir and moving handled
// recordings to archivedDir. Both directories are created if missing.
func NewInbox(gen Generator, log logger.Logger, outputDir, archivedDir, language string, meta meeting.Metadata) (*Inbox, error) {
	for _, dir := range []string{outputDir, archivedDir} {
		if err := ensureDir(dir); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &Inbox{
		generator:   gen,
		logger:      log,
		outputDir:   outputDir,
		archivedDir: archivedDir,
		language:    language,
		metadata:    meta,
	}, nil
}

// Handle generates minutes for the recording at audioPath without prompting.
// The recording is archived only after the document has been written.
func (in *Inbox) Handle(ctx context.Context, audioPath string) error {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	out, err := in.generator.Generate(ctx, Request{
		AudioPath:  audioPath,
		OutputPath: filepath.Join(in.outputDir, base+".docx"),
		Language:   in.language,
		Metadata:   in.metadata,
	})
	if err != nil {
		return err
	}

	if err := in.archive(ctx, audioPath); err != nil {
		in.logger.Warn(ctx, "Failed to move recording to archived folder: %v", err)
	}
	in.logger.Info(ctx, "Processed %s -> %s", audioPath, out)
	return nil
}

func (in *Inbox) archive(ctx context.Context, audioPath string) error {
	dest := filepath.Join(in.archivedDir, filepath.Base(audioPath))
	in.logger.Info(ctx, "Moving to archived folder: %s -> %s", audioPath, dest)

	if err := os.Rename(audioPath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
