// Package config provides resolver configuration from environment variables.
//
// # Overview
//
// Configuration is read through viper with the OXID_ prefix and sensible
// defaults for every setting; nothing is required for a standard composer
// project layout.
//
// # Settings
//
//	OXID_PROJECT_DIR="."                              project root
//	OXID_VENDOR_DIR="<project>/vendor"                composer vendor dir
//	OXID_ARTIFACT_PATH="<project>/generated/shop_modules.yaml"
//	OXID_LOG_LEVEL="info"                             debug, info, warn, error
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	repo := composer.NewInstalledRepository(cfg.VendorDir)
package config
