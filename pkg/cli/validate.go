package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the validate command: a full resolution dry run
// that never writes the artifact.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Resolve the module load order without writing the module list",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			entries, err := rt.orch.Resolve()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Load order valid, %d modules:\n", len(entries))
			for i, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %s (%s)\n", i+1, entry.Name, entry.Implementation)
			}
			return nil
		},
	}
}
