package modulelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// listStubModule implements modules.ShopModule for testing
type listStubModule struct {
	id string
}

func (m *listStubModule) ID() string { return m.id }

func newTestRegistry(t *testing.T, ids ...string) *modules.Registry {
	t.Helper()
	registry := modules.NewRegistry()
	for _, id := range ids {
		id := id
		require.NoError(t, registry.Register(id, func() modules.ShopModule {
			return &listStubModule{id: id}
		}))
	}
	return registry
}

func testEntries() []Entry {
	return []Entry{
		{Name: "kernel", Implementation: "oxidkernel/kernel"},
		{Name: "auth", Implementation: "acme/auth-module", Capabilities: []modules.Capability{modules.CapabilityDependencies, modules.CapabilityRoutes}},
		{Name: "billing", Implementation: "acme/billing-module", Capabilities: []modules.Capability{modules.CapabilityDependencies}},
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	registry := newTestRegistry(t, "oxidkernel/kernel", "acme/auth-module", "acme/billing-module")

	first, err := Generate(testEntries(), registry)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Generate(testEntries(), registry)
		require.NoError(t, err)
		assert.Equal(t, first, again, "generation must be byte-identical")
	}
}

func TestGenerate_PreservesOrder(t *testing.T) {
	registry := newTestRegistry(t, "oxidkernel/kernel", "acme/auth-module", "acme/billing-module")

	data, err := Generate(testEntries(), registry)
	require.NoError(t, err)

	list, err := loadFromBytes(t, data, registry)
	require.NoError(t, err)
	assert.Equal(t, []string{"kernel", "auth", "billing"}, list.Names())
}

func TestGenerate_MissingImplementation(t *testing.T) {
	registry := newTestRegistry(t, "oxidkernel/kernel")

	_, err := Generate(testEntries(), registry)
	require.Error(t, err)
	assert.ErrorIs(t, err, modules.ErrMissingImplementation)
	assert.Contains(t, err.Error(), "acme/auth-module")
}

func TestWrite_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated", "shop_modules.yaml")

	require.NoError(t, Write(path, []byte("version: 1\nmodules: []\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\nmodules: []\n", string(data))

	// Overwrite keeps a single file and leaves no temp files behind.
	require.NoError(t, Write(path, []byte("version: 1\nmodules:\n    - name: kernel\n")))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shop_modules.yaml", entries[0].Name())
}

func loadFromBytes(t *testing.T, data []byte, registry *modules.Registry) (*ShopModuleList, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop_modules.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return Load(path, registry)
}
