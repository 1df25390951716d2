package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModule implements ShopModule for testing
type stubModule struct {
	id   string
	deps []string
}

func (m *stubModule) ID() string { return m.id }

func (m *stubModule) Dependencies() []string { return m.deps }

func stubFactory(id string, deps ...string) Factory {
	return func() ShopModule {
		return &stubModule{id: id, deps: deps}
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register("acme/auth-module", stubFactory("acme/auth-module")))
	assert.True(t, registry.Has("acme/auth-module"))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register("acme/auth-module", stubFactory("acme/auth-module")))
	err := registry.Register("acme/auth-module", stubFactory("acme/auth-module"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	registry := NewRegistry()

	assert.Error(t, registry.Register("", stubFactory("x")))
	assert.Error(t, registry.Register("acme/x", nil))
}

func TestRegistry_New(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("acme/auth-module", stubFactory("acme/auth-module")))

	instance, err := registry.New("acme/auth-module")
	require.NoError(t, err)
	assert.Equal(t, "acme/auth-module", instance.ID())

	_, err = registry.New("acme/unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingImplementation)
}

func TestRegistry_Capabilities(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("acme/auth-module", stubFactory("acme/auth-module"),
		CapabilityRoutes, CapabilityDependencies))

	// Stored sorted for deterministic enumeration.
	assert.Equal(t, []Capability{CapabilityDependencies, CapabilityRoutes},
		registry.Capabilities("acme/auth-module"))

	assert.True(t, registry.HasCapability("acme/auth-module", CapabilityRoutes))
	assert.False(t, registry.HasCapability("acme/auth-module", CapabilityConsole))
	assert.False(t, registry.HasCapability("acme/unknown", CapabilityRoutes))
	assert.Nil(t, registry.Capabilities("acme/unknown"))
}

func TestRegistry_DependenciesOf(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("acme/auth-module",
		stubFactory("acme/auth-module", "kernel"), CapabilityDependencies))
	require.NoError(t, registry.Register("acme/plain-module",
		stubFactory("acme/plain-module", "kernel")))

	assert.Equal(t, []string{"kernel"}, registry.DependenciesOf("acme/auth-module"))

	// Without the capability tag the dependency list is never consulted.
	assert.Nil(t, registry.DependenciesOf("acme/plain-module"))
	assert.Nil(t, registry.DependenciesOf("acme/unknown"))
}

func TestRegistry_Clear(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("acme/auth-module", stubFactory("acme/auth-module")))

	registry.Clear()
	assert.Equal(t, 0, registry.Count())
	assert.False(t, registry.Has("acme/auth-module"))
}
