package composer

import "errors"

var (
	// ErrNotInstalled is returned when the composer install state is missing
	// or incomplete
	ErrNotInstalled = errors.New("composer packages are not installed")

	// ErrInvalidInstallState is returned when installed.json cannot be parsed
	ErrInvalidInstallState = errors.New("invalid composer install state")
)

// Package is one unit produced by composer. It is immutable once read; the
// resolution pipeline references it but never owns it.
type Package struct {
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Extra   map[string]any `json:"extra,omitempty"`

	// Replace maps replaced package names to version constraints, mirroring
	// the composer "replace" section.
	Replace map[string]string `json:"replace,omitempty"`
}

// ReplacesName reports whether the package declares that it replaces name.
func (p *Package) ReplacesName(name string) bool {
	_, ok := p.Replace[name]
	return ok
}

// Repository provides an enumerable, order-stable list of complete packages.
type Repository interface {
	Packages() ([]*Package, error)
}
