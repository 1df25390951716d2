package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/composer"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/config"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/observability"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/orchestrator"
)

// NewRootCommand creates the oxid-modules root command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "oxid-modules",
		Short:         "Resolve and inspect the shop-module load order",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newResolveCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newListCommand())
	root.AddCommand(newWatchCommand())

	return root
}

// runtime bundles everything a command needs for a resolution run.
type runtime struct {
	cfg  *config.Config
	log  *logrus.Logger
	repo *composer.InstalledRepository
	orch *orchestrator.Orchestrator
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := observability.NewLogger(cfg.LogLevel, nil)
	repo := composer.NewInstalledRepository(cfg.VendorDir)
	orch := orchestrator.New(repo, modules.DefaultRegistry(), cfg.ArtifactPath, log)

	return &runtime{cfg: cfg, log: log, repo: repo, orch: orch}, nil
}
