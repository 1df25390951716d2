package composer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// InstalledFileName is the snapshot composer writes below the vendor dir.
const InstalledFileName = "composer/installed.json"

// InstalledRepository reads packages from vendor/composer/installed.json.
// Packages are returned in file order, which composer keeps stable between
// runs of the same install state.
type InstalledRepository struct {
	vendorDir string
}

// NewInstalledRepository creates a repository over a composer vendor directory.
func NewInstalledRepository(vendorDir string) *InstalledRepository {
	return &InstalledRepository{vendorDir: vendorDir}
}

// installedFile mirrors the composer 2 installed.json layout.
type installedFile struct {
	Packages []*Package `json:"packages"`
}

// Packages implements Repository.Packages.
func (r *InstalledRepository) Packages() ([]*Package, error) {
	path := filepath.Join(r.vendorDir, InstalledFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s not found, run composer install", ErrNotInstalled, path)
		}
		return nil, fmt.Errorf("failed to read install state: %w", err)
	}

	var installed installedFile
	if err := json.Unmarshal(data, &installed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstallState, err)
	}

	for i, pkg := range installed.Packages {
		if pkg == nil || pkg.Name == "" {
			return nil, fmt.Errorf("%w: package entry %d has no name", ErrInvalidInstallState, i)
		}
	}

	return installed.Packages, nil
}

// Path returns the location of the install state file this repository reads.
func (r *InstalledRepository) Path() string {
	return filepath.Join(r.vendorDir, InstalledFileName)
}
