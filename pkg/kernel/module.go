// Package kernel provides the shop module shipped with the kernel itself.
// It is declared by the oxid/kernel composer package and sorted first among
// otherwise independent modules.
package kernel

import (
	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// ImplementationID is the identifier the oxid/kernel package declares.
const ImplementationID = "oxidkernel/kernel"

// Module is the kernel shop module.
type Module struct{}

// ID implements modules.ShopModule.
func (Module) ID() string { return ImplementationID }

// Register installs the kernel module factory into a registry.
func Register(registry *modules.Registry) error {
	return registry.Register(ImplementationID, func() modules.ShopModule {
		return Module{}
	}, modules.CapabilityRoutes, modules.CapabilityConsole)
}
