package main

import (
	"context"
	"fmt"
	"os"

	"github.com/political-party-kit/partykit/internal/app"
	"github.com/political-party-kit/partykit/internal/cli"
	"github.com/political-party-kit/partykit/internal/config"
	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/output"
	"github.com/political-party-kit/partykit/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	deps := &cli.Dependencies{Load: load}
	return cli.NewRootCmd(deps).Execute()
}

func load(configPath string) (*app.App, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(context.Background(), "Configuration loaded (provider: %s)", cfg.Provider)

	return app.New(cfg, log, executor.New()), nil
}
