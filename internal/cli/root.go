package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/app"
	"github.com/political-party-kit/partykit/internal/version"
)

// Dependencies are resolved once the global flags have been parsed.
type Dependencies struct {
	// Load builds the application from the --config path.
	Load func(configPath string) (*app.App, error)

	App    *app.App
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var configPath string

	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	rootCmd := &cobra.Command{
		Use:   "partykit",
		Short: "Werkzeuge für die Parteiarbeit",
		Long:  "Political Party Kit: erstellt Sitzungsprotokolle aus Audioaufnahmen und ein Dashboard aller Module.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.App != nil {
				return nil
			}
			a, err := deps.Load(configPath)
			if err != nil {
				return err
			}
			deps.App = a
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Konfigurationsdatei (Standard: ./partykit.yaml, falls vorhanden)")

	rootCmd.AddCommand(NewMinutesCmd(deps))
	rootCmd.AddCommand(NewDashboardCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))
	rootCmd.AddCommand(NewVersionCmd(deps))

	return rootCmd
}
