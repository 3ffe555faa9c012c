package transcriber

import (
	"context"

	"github.com/political-party-kit/partykit/internal/config"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/pkg/executor"
)

// New builds the Transcriber for the configured provider, wrapped with the
// ffmpeg conversion step when enabled.
func New(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	var t Transcriber
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		t = g
	default:
		t = NewOpenAI(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.TranscribeModel)
	}

	if cfg.FFmpeg.Enabled {
		t = WithConversion(t, exec, log, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.TempDir)
	}
	return t, nil
}

// WithConversion wraps next so every recording passes through ffmpeg first.
func WithConversion(next Transcriber, exec executor.Executor, log logger.Logger, ffmpegPath, tempDir string) Transcriber {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &converting{
		next:     next,
		executor: exec,
		logger:   log,
		ffmpeg:   ffmpegPath,
		tempDir:  tempDir,
	}
}
