// Package orchestrator wires discovery, resolution and artifact generation
// into one resolution run, triggered by the composer lifecycle after every
// install or update.
package orchestrator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/composer"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modulelist"
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// Orchestrator runs the resolution pipeline over a package repository.
type Orchestrator struct {
	repo         composer.Repository
	registry     *modules.Registry
	artifactPath string
	log          *logrus.Logger
}

// New creates an orchestrator. A nil logger falls back to a default one.
func New(repo composer.Repository, registry *modules.Registry, artifactPath string, log *logrus.Logger) *Orchestrator {
	if log == nil {
		log = logrus.New()
	}
	return &Orchestrator{
		repo:         repo,
		registry:     registry,
		artifactPath: artifactPath,
		log:          log,
	}
}

// Run resolves the module load order and writes the artifact. On any error
// nothing is written and the previous artifact stays in place.
func (o *Orchestrator) Run() error {
	entries, err := o.Resolve()
	if err != nil {
		return err
	}

	data, err := modulelist.Generate(entries, o.registry)
	if err != nil {
		return err
	}

	if err := modulelist.Write(o.artifactPath, data); err != nil {
		return err
	}

	o.log.Infof("Wrote module list with %d modules to %s", len(entries), o.artifactPath)
	return nil
}

// Resolve runs discovery and ordering without writing the artifact. The
// returned entries are in final load order, application override included.
func (o *Orchestrator) Resolve() ([]modulelist.Entry, error) {
	log := o.log.WithField("run_id", uuid.NewString())

	packages, err := o.repo.Packages()
	if err != nil {
		return nil, err
	}
	log.Debugf("Inspecting %d installed packages", len(packages))

	var declarations []modules.Declaration
	for _, pkg := range packages {
		decls, err := modules.ExtractDeclarations(pkg)
		if err != nil {
			return nil, err
		}
		if len(decls) == 0 {
			continue
		}

		if err := modules.CheckKernelCompatibility(pkg); err != nil {
			return nil, err
		}
		declarations = append(declarations, decls...)
	}
	log.Infof("Discovered %d shop modules in %d packages", len(declarations), len(packages))

	graph, err := modules.BuildGraph(declarations, o.registry)
	if err != nil {
		return nil, err
	}

	if decl, ok := graph.Declaration(modules.AppModuleName); ok {
		return nil, fmt.Errorf("%w: %q is reserved for the application override, declared by %s",
			modules.ErrDuplicateModule, modules.AppModuleName, decl.Package)
	}

	order, err := modules.Resolve(graph, o.primaryName(declarations))
	if err != nil {
		return nil, err
	}

	entries := make([]modulelist.Entry, 0, len(order)+1)
	for _, name := range order {
		decl, _ := graph.Declaration(name)
		entries = append(entries, modulelist.Entry{
			Name:           name,
			Implementation: decl.Implementation,
			Capabilities:   o.registry.Capabilities(decl.Implementation),
		})
	}

	// The application override is never discovered and never graph-ordered;
	// it is appended when its implementation exists in this build.
	if o.registry.Has(modules.AppImplementationID) {
		entries = append(entries, modulelist.Entry{
			Name:           modules.AppModuleName,
			Implementation: modules.AppImplementationID,
			Capabilities:   o.registry.Capabilities(modules.AppImplementationID),
		})
		log.Debug("Appended application override module")
	}

	return entries, nil
}

// primaryName returns the logical name declared by the kernel package, if
// any. The kernel is sorted first among otherwise independent modules.
func (o *Orchestrator) primaryName(declarations []modules.Declaration) string {
	for _, decl := range declarations {
		if decl.Package == modules.KernelPackageName {
			return decl.Name
		}
	}
	return ""
}
