package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/version"
)

func NewVersionCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Versionsinformationen anzeigen",
		// No configuration needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(deps.Stdout, version.Full())
			return nil
		},
	}
}
