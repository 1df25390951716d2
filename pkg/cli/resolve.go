package cli

import (
	"github.com/spf13/cobra"
)

// newResolveCommand creates the resolve command, the entry point the composer
// lifecycle invokes after install and update.
func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the module load order and write the module list",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			return rt.orch.Run()
		},
	}
}
