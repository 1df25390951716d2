package modulelist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadDocument reads the raw artifact without instantiating modules. Useful
// for inspection tooling that runs outside the host kernel.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module list: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse module list: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported module list version %d (want %d)", doc.Version, FormatVersion)
	}

	return &doc, nil
}
