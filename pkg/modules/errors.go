package modules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDeclaration is returned when the shop-module metadata value
	// has an unsupported shape
	ErrInvalidDeclaration = errors.New("invalid shop-module declaration")

	// ErrUnauthorizedClaim is returned when a package declares a logical name
	// it neither owns nor replaces
	ErrUnauthorizedClaim = errors.New("unauthorized shop-module name claim")

	// ErrDuplicateModule is returned when two packages declare the same
	// logical name
	ErrDuplicateModule = errors.New("shop module cannot be registered twice")

	// ErrKernelIncompatible is returned when a declaring package's kernel
	// version constraint is not satisfied
	ErrKernelIncompatible = errors.New("incompatible kernel version")

	// ErrDanglingDependency is returned when a dependency edge points at an
	// unknown logical name
	ErrDanglingDependency = errors.New("dependency on unknown shop module")

	// ErrDependencyCycle is returned when the dependency graph is not a DAG
	ErrDependencyCycle = errors.New("shop module dependency cycle")

	// ErrMissingImplementation is returned when an implementation ID has no
	// registered factory
	ErrMissingImplementation = errors.New("shop module implementation not registered")
)

// IsConfigError reports whether err is a declaration or registration problem,
// as opposed to an invalid graph.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidDeclaration) ||
		errors.Is(err, ErrUnauthorizedClaim) ||
		errors.Is(err, ErrDuplicateModule) ||
		errors.Is(err, ErrKernelIncompatible)
}

// IsDanglingDependencyError checks if the error is or wraps ErrDanglingDependency
func IsDanglingDependencyError(err error) bool {
	return errors.Is(err, ErrDanglingDependency)
}

// IsCycleError checks if the error is or wraps ErrDependencyCycle
func IsCycleError(err error) bool {
	return errors.Is(err, ErrDependencyCycle)
}

// NewDuplicateModuleError creates a duplicate registration error naming both
// declaring packages
func NewDuplicateModuleError(name, firstPackage, secondPackage string) error {
	return fmt.Errorf("%w: %q declared by both %s and %s", ErrDuplicateModule, name, firstPackage, secondPackage)
}

// NewDanglingDependencyError creates a dangling dependency error naming the
// missing target and the module that requires it
func NewDanglingDependencyError(from, missing string) error {
	return fmt.Errorf("%w: %q required by %q is not provided by any package", ErrDanglingDependency, missing, from)
}

// NewCycleError creates a cycle error listing every participant in order
func NewCycleError(cycle []string) error {
	return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(cycle, " -> "))
}

// NewMissingImplementationError creates a missing implementation error for an
// implementation ID
func NewMissingImplementationError(name, implementation string) error {
	return fmt.Errorf("%w: %s for module %q", ErrMissingImplementation, implementation, name)
}
