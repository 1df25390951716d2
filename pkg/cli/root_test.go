package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// cliStubModule implements modules.ShopModule for testing
type cliStubModule struct {
	id string
}

func (m *cliStubModule) ID() string { return m.id }

func setupProject(t *testing.T) string {
	t.Helper()
	projectDir := t.TempDir()
	composerDir := filepath.Join(projectDir, "vendor", "composer")
	require.NoError(t, os.MkdirAll(composerDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(composerDir, "installed.json"), []byte(`{
		"packages": [
			{"name": "oxid/kernel", "version": "1.0.0", "extra": {"shop-module": "oxidkernel/kernel"}}
		]
	}`), 0644))

	t.Setenv("OXID_PROJECT_DIR", projectDir)

	registry := modules.DefaultRegistry()
	t.Cleanup(registry.Clear)
	require.NoError(t, registry.Register("oxidkernel/kernel", func() modules.ShopModule {
		return &cliStubModule{id: "oxidkernel/kernel"}
	}))

	return projectDir
}

func TestRootCommand_Wiring(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"resolve", "validate", "list", "watch"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestResolveCommand_WritesArtifact(t *testing.T) {
	projectDir := setupProject(t)

	root := NewRootCommand()
	root.SetArgs([]string{"resolve"})
	require.NoError(t, root.Execute())

	artifact := filepath.Join(projectDir, "generated", "shop_modules.yaml")
	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), "oxid/kernel")
}

func TestValidateCommand_NoArtifact(t *testing.T) {
	projectDir := setupProject(t)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"validate"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "oxid/kernel")

	_, err := os.Stat(filepath.Join(projectDir, "generated", "shop_modules.yaml"))
	assert.True(t, os.IsNotExist(err), "validate must not write the artifact")
}

func TestListCommand_ShowsOrder(t *testing.T) {
	setupProject(t)

	root := NewRootCommand()
	root.SetArgs([]string{"resolve"})
	require.NoError(t, root.Execute())

	var out bytes.Buffer
	root = NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"list"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "oxid/kernel")
}

func TestResolveCommand_FailsOnMissingInstallState(t *testing.T) {
	t.Setenv("OXID_PROJECT_DIR", t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{"resolve"})
	assert.Error(t, root.Execute())
}
