package cli

import (
	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/dashboard"
	"github.com/political-party-kit/partykit/internal/output"
)

func NewDashboardCmd(deps *Dependencies) *cobra.Command {
	var outPath string
	var open bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Statische Übersichtsseite aller Module erzeugen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			formatter := output.NewFormatter(deps.Stdout)

			path, err := dashboard.Write(firstNonEmpty(outPath, cfg.Dashboard.Output), dashboard.FromConfig(cfg.Dashboard))
			if err != nil {
				return err
			}
			formatter.DashboardDone(path)

			if open {
				return dashboard.Open(cmd.Context(), deps.App.Executor, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Zieldatei (Standard aus der Konfiguration: dashboard.html)")
	cmd.Flags().BoolVar(&open, "open", false, "Dashboard nach dem Schreiben im Browser öffnen")

	return cmd
}
