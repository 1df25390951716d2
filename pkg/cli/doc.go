// Package cli implements the oxid-modules command line interface.
package cli
