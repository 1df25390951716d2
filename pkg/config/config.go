package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modulelist"
)

// Config holds all resolver configuration.
type Config struct {
	// ProjectDir is the root of the hosting application.
	ProjectDir string

	// VendorDir is the composer vendor directory holding installed.json.
	VendorDir string

	// ArtifactPath is where the generated module list is written.
	ArtifactPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from OXID_-prefixed environment variables and
// fills in defaults derived from the project directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OXID")
	v.AutomaticEnv()

	v.SetDefault("project_dir", ".")
	v.SetDefault("log_level", "info")

	cfg := &Config{
		ProjectDir:   v.GetString("project_dir"),
		VendorDir:    v.GetString("vendor_dir"),
		ArtifactPath: v.GetString("artifact_path"),
		LogLevel:     v.GetString("log_level"),
	}

	if cfg.VendorDir == "" {
		cfg.VendorDir = filepath.Join(cfg.ProjectDir, "vendor")
	}
	if cfg.ArtifactPath == "" {
		cfg.ArtifactPath = filepath.Join(cfg.ProjectDir, modulelist.DefaultArtifactPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return fmt.Errorf("project directory is required")
	}
	if c.VendorDir == "" {
		return fmt.Errorf("vendor directory is required")
	}
	if c.ArtifactPath == "" {
		return fmt.Errorf("artifact path is required")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
