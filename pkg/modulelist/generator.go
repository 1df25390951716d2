package modulelist

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// FormatVersion is the module-list document format version.
const FormatVersion = 1

// DefaultArtifactPath is where the list is written, relative to the project
// directory.
const DefaultArtifactPath = "generated/shop_modules.yaml"

// Entry is one resolved module in final load order.
type Entry struct {
	Name           string               `yaml:"name"`
	Implementation string               `yaml:"implementation"`
	Capabilities   []modules.Capability `yaml:"capabilities,omitempty"`
}

// Document is the serialized module list.
type Document struct {
	Version int     `yaml:"version"`
	Modules []Entry `yaml:"modules"`
}

// Generate serializes entries in their given order. Every implementation ID
// must have a registered factory; entries and capability lists are plain
// slices, so identical input yields byte-identical output.
func Generate(entries []Entry, registry *modules.Registry) ([]byte, error) {
	for _, entry := range entries {
		if !registry.Has(entry.Implementation) {
			return nil, modules.NewMissingImplementationError(entry.Name, entry.Implementation)
		}
	}

	doc := Document{
		Version: FormatVersion,
		Modules: entries,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal module list: %w", err)
	}

	return data, nil
}

// Write replaces the artifact at path atomically: the document is written to
// a temporary file in the target directory and renamed into place, so readers
// either see the old list or the complete new one.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shop_modules-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace artifact: %w", err)
	}

	return nil
}
