// Package modules implements shop-module discovery and load-order resolution.
//
// # Overview
//
// Composer packages declare shop modules through the "shop-module" extra key.
// This package extracts those declarations, builds a dependency graph across
// all declaring packages, and resolves a total, deterministic load order with
// the kernel module placed first. It also hosts the implementation registry:
// a table mapping implementation IDs to zero-argument factories plus the
// capability tags each implementation declares.
//
// # Pipeline
//
// Metadata Reader: ExtractDeclarations parses one package's extra metadata
// Graph Builder: BuildGraph collects must-follow edges per logical name
// Resolver: Resolve emits the final order or rejects the graph
//
// # Errors
//
// Configuration problems (bad declaration shape, unauthorized name claim,
// duplicate registration, kernel incompatibility) are grouped under
// IsConfigError. Invalid graphs surface as ErrDanglingDependency or
// ErrDependencyCycle. All errors are fatal to the run; none are downgraded.
//
// # Usage Example
//
// Resolve a load order:
//
//	decls, err := modules.ExtractAll(packages)
//	graph, err := modules.BuildGraph(decls, modules.DefaultRegistry())
//	order, err := modules.Resolve(graph, "kernel")
//
// # Related Packages
//
//   - pkg/composer: supplies the installed packages
//   - pkg/modulelist: serializes the resolved order
package modules
