package modules

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/composer"
)

// CheckKernelCompatibility validates a declaring package's kernel-version
// constraint against the running kernel. Packages without the constraint are
// accepted; a malformed or unsatisfied constraint fails the run.
func CheckKernelCompatibility(pkg *composer.Package) error {
	raw, ok := pkg.Extra[KernelVersionKey]
	if !ok {
		return nil
	}

	text, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: package %s: %s must be a string, got %T",
			ErrInvalidDeclaration, pkg.Name, KernelVersionKey, raw)
	}

	constraint, err := semver.NewConstraint(text)
	if err != nil {
		return fmt.Errorf("%w: package %s: bad constraint %q: %v",
			ErrInvalidDeclaration, pkg.Name, text, err)
	}

	kernel := semver.MustParse(CurrentKernelVersion)
	if !constraint.Check(kernel) {
		return fmt.Errorf("%w: package %s requires kernel %q, running %s",
			ErrKernelIncompatible, pkg.Name, text, CurrentKernelVersion)
	}

	return nil
}
