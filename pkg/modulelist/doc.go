// Package modulelist generates and loads the static shop-module list.
//
// # Overview
//
// The resolved load order is serialized into an ordered YAML document at a
// fixed path. The host kernel loads that document once at startup through
// Load, which instantiates every entry from the implementation registry —
// no graph resolution happens at runtime. Generation is deterministic:
// identical input produces byte-identical output, and the artifact is written
// atomically so the previous list stays valid until the new one is complete.
//
// # Usage Example
//
// Generate after a resolution run:
//
//	data, err := modulelist.Generate(entries, registry)
//	err = modulelist.Write(cfg.ArtifactPath, data)
//
// Load at kernel startup:
//
//	list, err := modulelist.Load(cfg.ArtifactPath, registry)
//	for _, m := range list.Modules() {
//		kernel.Mount(m)
//	}
//
// # Related Packages
//
//   - pkg/modules: produces the resolved order and hosts the registry
//   - pkg/orchestrator: invokes generation at the end of a run
package modulelist
