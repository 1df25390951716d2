package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modulelist"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// newListCommand creates the list command for inspecting the current
// artifact without instantiating any module.
func newListCommand() *cobra.Command {
	var (
		capability string
		reverse    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the generated module list",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			doc, err := modulelist.ReadDocument(rt.cfg.ArtifactPath)
			if err != nil {
				return err
			}

			entries := doc.Modules
			if capability != "" {
				entries = filterByCapability(entries, modules.Capability(capability))
			}
			if reverse {
				for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
					entries[i], entries[j] = entries[j], entries[i]
				}
			}

			for i, entry := range entries {
				line := fmt.Sprintf("%2d. %s (%s)", i+1, entry.Name, entry.Implementation)
				if len(entry.Capabilities) > 0 {
					tags := make([]string, len(entry.Capabilities))
					for k, c := range entry.Capabilities {
						tags[k] = string(c)
					}
					line += " [" + strings.Join(tags, ", ") + "]"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&capability, "capability", "", "only show modules with this capability tag")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "show modules in reverse load order")

	return cmd
}

func filterByCapability(entries []modulelist.Entry, capability modules.Capability) []modulelist.Entry {
	filtered := make([]modulelist.Entry, 0, len(entries))
	for _, entry := range entries {
		for _, c := range entry.Capabilities {
			if c == capability {
				filtered = append(filtered, entry)
				break
			}
		}
	}
	return filtered
}
