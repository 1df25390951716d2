package modules

const (
	// MetadataKey is the composer extra key carrying shop-module declarations.
	MetadataKey = "shop-module"

	// KernelVersionKey is the composer extra key carrying a kernel version
	// constraint for declaring packages.
	KernelVersionKey = "kernel-version"

	// KernelPackageName is the composer package providing the kernel module.
	// Its declared module is placed first unless dependency edges force
	// otherwise.
	KernelPackageName = "oxid/kernel"

	// CurrentKernelVersion is the kernel version declaring packages are
	// checked against.
	CurrentKernelVersion = "1.0.0"

	// AppModuleName is the logical name of the application override module.
	AppModuleName = "app"

	// AppImplementationID is the implementation the application override is
	// instantiated from when it is registered. It is appended after
	// resolution and never discovered or graph-ordered.
	AppImplementationID = "app/shop-module"
)

// Capability tags what an implementation can do. Capabilities are declared at
// registration and checked by set membership, never by type inspection.
type Capability string

const (
	// CapabilityDependencies marks implementations that report other logical
	// names they must be loaded after.
	CapabilityDependencies Capability = "has-dependencies"

	// CapabilityRoutes marks implementations that contribute routes to the
	// host kernel.
	CapabilityRoutes Capability = "provides-routes"

	// CapabilityConsole marks implementations that contribute console
	// commands to the host kernel.
	CapabilityConsole Capability = "provides-console"
)

// ShopModule is a plugin instance produced by a registered factory.
type ShopModule interface {
	// ID returns the implementation identifier the instance was created from.
	ID() string
}

// DependencyAware is implemented by modules that must be loaded after other
// modules. Only consulted for implementations registered with
// CapabilityDependencies.
type DependencyAware interface {
	ShopModule

	// Dependencies returns logical names this module must follow.
	Dependencies() []string
}

// Declaration is one (logical name, implementation ID) pair extracted from a
// package's metadata, together with the declaring package. Declarations only
// live for the duration of a resolution run.
type Declaration struct {
	Name           string
	Implementation string
	Package        string
}

// DependencySource answers the dependency-list capability question for an
// implementation ID. Implementations without the capability yield nil.
type DependencySource interface {
	DependenciesOf(implementation string) []string
}
