// Package config manages tileplan configuration and filesystem paths.
//
// Configuration includes the locations of tileplan data directories, which
// can be customized via environment variables. The default root is
// ~/.tileplan/ containing plans/, the quadrant database, and the config
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by tileplan.
type Paths struct {
	// Root is the base directory for all tileplan data (default: ~/.tileplan)
	Root string

	// Plans is the directory where plan documents are written
	Plans string

	// Database is the path to the quadrant ledger database
	Database string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for tileplan.
// Paths can be overridden with environment variables:
// - TILEPLAN_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TILEPLAN_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".tileplan")
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at an explicit directory, as selected
// with the --dir flag.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Plans:    filepath.Join(root, "plans"),
		Database: filepath.Join(root, "quadrants.db"),
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Plans,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
