package modules

import (
	"fmt"
	"sort"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/composer"
)

// ExtractDeclarations extracts shop-module declarations from one package's
// extra metadata. A package without the shop-module key declares nothing,
// which is not an error. Pure function of its input.
func ExtractDeclarations(pkg *composer.Package) ([]Declaration, error) {
	raw, ok := pkg.Extra[MetadataKey]
	if !ok {
		return nil, nil
	}

	switch value := raw.(type) {
	case string:
		// Shorthand form: the package name doubles as the logical name.
		return []Declaration{{
			Name:           pkg.Name,
			Implementation: value,
			Package:        pkg.Name,
		}}, nil

	case map[string]any:
		return extractMapping(pkg, value)

	default:
		return nil, fmt.Errorf("%w: package %s: %s must be a string or a mapping, got %T",
			ErrInvalidDeclaration, pkg.Name, MetadataKey, raw)
	}
}

// extractMapping handles the logical-name -> implementation-ID form. A package
// may only claim names it owns or replaces. Keys are visited in sorted order
// so discovery order is stable across runs.
func extractMapping(pkg *composer.Package, mapping map[string]any) ([]Declaration, error) {
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	declarations := make([]Declaration, 0, len(names))
	for _, name := range names {
		implementation, ok := mapping[name].(string)
		if !ok {
			return nil, fmt.Errorf("%w: package %s: implementation for %q must be a string, got %T",
				ErrInvalidDeclaration, pkg.Name, name, mapping[name])
		}

		if name != pkg.Name && !pkg.ReplacesName(name) {
			return nil, fmt.Errorf("%w: package %s declares %q without replacing it",
				ErrUnauthorizedClaim, pkg.Name, name)
		}

		declarations = append(declarations, Declaration{
			Name:           name,
			Implementation: implementation,
			Package:        pkg.Name,
		})
	}

	return declarations, nil
}

// ExtractAll runs ExtractDeclarations over packages in repository order and
// accumulates the results, failing fast on the first bad declaration.
func ExtractAll(packages []*composer.Package) ([]Declaration, error) {
	var declarations []Declaration
	for _, pkg := range packages {
		decls, err := ExtractDeclarations(pkg)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decls...)
	}
	return declarations, nil
}
