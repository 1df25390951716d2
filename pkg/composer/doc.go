// Package composer reads installed-package metadata produced by the composer
// package manager.
//
// # Overview
//
// Composer materializes the full set of installed packages in
// vendor/composer/installed.json. This package exposes that snapshot as an
// order-stable Repository of complete packages, each carrying its declared
// name, its "extra" metadata document and its replace map. The resolution
// pipeline only reads this data; composer owns it.
//
// # Usage Example
//
// List installed packages:
//
//	repo := composer.NewInstalledRepository("/app/vendor")
//	packages, err := repo.Packages()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, pkg := range packages {
//		fmt.Printf("%s %s\n", pkg.Name, pkg.Version)
//	}
//
// # Related Packages
//
//   - pkg/modules: extracts shop-module declarations from packages
//   - pkg/orchestrator: drives a resolution run over the repository
package composer
