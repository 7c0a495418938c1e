package install

import (
	"path/filepath"
	"time"

	"github.com/hollowdeep/bootstrap/pkg/fileutil"
)

// receiptName is the file written under the install root after a
// successful install.
const receiptName = "install-receipt.yaml"

// Receipt records what a run installed. It exists for the user's
// benefit; nothing in the installer reads it back.
type Receipt struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version"`
	InstalledAt time.Time `yaml:"installed_at"`
	Binary      string    `yaml:"binary"`
	DataDir     string    `yaml:"data_dir,omitempty"`
}

// writeReceipt writes the receipt atomically under the prefix.
func writeReceipt(prefix string, r Receipt) error {
	return fileutil.AtomicWriteYAML(filepath.Join(prefix, receiptName), r)
}
