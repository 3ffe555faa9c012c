package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/pkg/executor"
)

// converting wraps a Transcriber and first normalizes the recording to a
// 16kHz mono 32 kbit/s MP3 with ffmpeg. This also extracts the audio track from
// videos. At 32 kbit/s an hour of audio is about 14 MB, so recordings of up to
// roughly 100 minutes stay under the 25 MB upload limit.
type converting struct {
	next     Transcriber
	executor executor.Executor
	logger   logger.Logger
	ffmpeg   string
	tempDir  string
}

func (c *converting) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", err
	}

	mp3Path, err := c.extractAudio(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer c.cleanupTempFile(ctx, mp3Path)

	return c.next.Transcribe(ctx, mp3Path, language)
}

func (c *converting) extractAudio(ctx context.Context, audioPath string) (string, error) {
	dir := c.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	outPath := filepath.Join(dir, "partykit-"+uuid.NewString()+".mp3")

	c.logger.Info(ctx, "Converting recording to 16kHz mono MP3: %s", audioPath)

	// -vn: drop video, -ar 16000 -ac 1: 16kHz mono, 32k: ~14 MB per hour
	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "libmp3lame",
		"-b:a", "32k",
		"-y",
		outPath,
	}

	if _, err := c.executor.Execute(ctx, c.ffmpeg, args...); err != nil {
		// ffmpeg may leave a partial output behind
		c.cleanupTempFile(ctx, outPath)
		return "", fmt.Errorf("ffmpeg: %w", err)
	}

	c.logger.Debug(ctx, "Audio converted: %s", outPath)
	return outPath, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (c *converting) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		c.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
