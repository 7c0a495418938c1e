// Package install creates the target directory layout, copies the built
// artifact and data assets, and persists the user's search path.
package install

import (
	"os"
	"path/filepath"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// Layout is the directory structure created under the install root.
// Both paths derive deterministically from the prefix.
type Layout struct {
	// BinDir holds the installed binary.
	BinDir string

	// DataDir holds the copied game assets.
	DataDir string
}

// NewLayout derives the layout from an install prefix.
func NewLayout(prefix string) Layout {
	return Layout{
		BinDir:  filepath.Join(prefix, "bin"),
		DataDir: filepath.Join(prefix, "data"),
	}
}

// Ensure creates both directories. Creation is idempotent: directories
// that already exist are success, not error.
func (l Layout) Ensure() error {
	if err := os.MkdirAll(l.BinDir, 0755); err != nil {
		return errors.Wrap(err, "creating bin directory")
	}
	if err := os.MkdirAll(l.DataDir, 0755); err != nil {
		return errors.Wrap(err, "creating data directory")
	}
	return nil
}
