package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/meeting"
	"github.com/political-party-kit/partykit/internal/minutes"
	"github.com/political-party-kit/partykit/internal/output"
	"github.com/political-party-kit/partykit/internal/transcriber"
	"github.com/political-party-kit/partykit/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	var metaFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Eingangsordner beobachten und neue Aufnahmen automatisch protokollieren",
		Long: "Verarbeitet jede Audiodatei, die im Eingangsordner (paths.inbox) landet, ohne Rückfragen.\n" +
			"Protokolle landen in paths.output, verarbeitete Aufnahmen werden nach paths.archived verschoben.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			log := deps.App.Logger
			formatter := output.NewFormatter(deps.Stdout)

			meta := meeting.New()
			if metaFile != "" {
				loaded, err := meeting.LoadFile(metaFile)
				if err != nil {
					return err
				}
				meta = loaded
			}

			if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
				return fmt.Errorf("create inbox: %w", err)
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			gen, err := deps.App.Minutes(ctx, minutes.Options{Progress: formatter.Progress})
			if err != nil {
				return err
			}

			inbox, err := minutes.NewInbox(gen, log, cfg.Paths.Output, cfg.Paths.Archived, cfg.Minutes.Language, meta)
			if err != nil {
				return err
			}

			handle := func(ctx context.Context, path string) error {
				ctx = logger.WithRunID(ctx, uuid.NewString())
				formatter.Transcribing(path)
				if err := inbox.Handle(ctx, path); err != nil {
					formatter.Error(fmt.Sprintf("%s: %v", path, err))
					return err
				}
				formatter.Success("Verarbeitet: " + path)
				return nil
			}

			w, err := watcher.New(cfg.Paths.Inbox, handle, log, watcher.Options{
				Filter:          transcriber.IsAudioFile,
				Settle:          watcher.DefaultSettle,
				ProcessExisting: true,
			})
			if err != nil {
				return err
			}
			defer w.Stop()

			formatter.Watching(cfg.Paths.Inbox)
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metaFile, "meta", "", "YAML-Datei mit Sitzungsangaben für alle Aufnahmen")

	return cmd
}
