// Package app wires configuration and adapters into the use cases the CLI runs.
package app

import (
	"context"
	"fmt"

	"github.com/political-party-kit/partykit/internal/config"
	"github.com/political-party-kit/partykit/internal/llm"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/minutes"
	"github.com/political-party-kit/partykit/internal/summarizer"
	"github.com/political-party-kit/partykit/internal/transcriber"
	"github.com/political-party-kit/partykit/pkg/executor"
)

type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Executor executor.Executor
}

func New(cfg *config.Config, log logger.Logger, exec executor.Executor) *App {
	return &App{
		Config:   cfg,
		Logger:   log,
		Executor: exec,
	}
}

// Minutes builds the minutes pipeline for the configured provider. The
// credential check happens here, before any network call.
func (a *App) Minutes(ctx context.Context, opts minutes.Options) (minutes.Generator, error) {
	if err := a.Config.RequireAPIKey(); err != nil {
		return nil, err
	}

	tr, err := transcriber.New(ctx, a.Config, a.Executor, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	completer, err := llm.New(ctx, a.Config)
	if err != nil {
		return nil, fmt.Errorf("create completer: %w", err)
	}

	if opts.ChunkChars <= 0 {
		opts.ChunkChars = a.Config.Minutes.ChunkChars
	}
	sum := summarizer.New(completer, a.Logger, a.Config.Minutes.Temperature)
	return minutes.New(tr, sum, a.Logger, opts), nil
}
