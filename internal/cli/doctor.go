package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/config"
	"github.com/political-party-kit/partykit/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Voraussetzungen prüfen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			f := output.NewFormatter(deps.Stdout)
			ok := true

			f.SetupCheck("Anbieter", true, cfg.Provider)

			if err := cfg.RequireAPIKey(); err != nil {
				f.SetupCheck("API-Schlüssel", false, apiKeyHint(cfg))
				ok = false
			} else {
				f.SetupCheck("API-Schlüssel", true, "konfiguriert")
			}

			if cfg.FFmpeg.Enabled {
				if path, err := deps.App.Executor.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
					f.SetupCheck("ffmpeg", false, "nicht gefunden. Installation z. B. mit: apt install ffmpeg")
					ok = false
				} else {
					f.SetupCheck("ffmpeg", true, path)
				}
			} else {
				f.SetupCheck("ffmpeg", true, "nicht benötigt (ffmpeg.enabled: false)")
			}

			for _, dir := range []struct{ name, path string }{
				{"Eingangsordner", cfg.Paths.Inbox},
				{"Ausgabeordner", cfg.Paths.Output},
			} {
				if info, err := os.Stat(dir.path); err == nil && info.IsDir() {
					f.SetupCheck(dir.name, true, dir.path)
				} else {
					f.SetupCheck(dir.name, true, dir.path+" (wird bei Bedarf angelegt)")
				}
			}

			if ok {
				f.Success("Alle Voraussetzungen erfüllt.")
			} else {
				f.Warning("Einige Voraussetzungen fehlen.")
			}
			return nil
		},
	}
}

func apiKeyHint(cfg *config.Config) string {
	env := "OPENAI_API_KEY"
	if cfg.Provider == config.ProviderGemini {
		env = "GEMINI_API_KEY"
	}
	return fmt.Sprintf("nicht gesetzt. %s in .env oder der Umgebung setzen", env)
}
