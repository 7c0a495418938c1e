package install

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hollowdeep/bootstrap/internal/errors"
	"github.com/hollowdeep/bootstrap/pkg/fileutil"
)

// Request describes one installation.
type Request struct {
	// Prefix is the install root; bin/ and data/ are created beneath it.
	Prefix string

	// ArtifactPath is the built binary to copy into bin/.
	ArtifactPath string

	// SourceDataDir is the assets directory to copy into data/.
	// Its absence is valid and skips the data copy.
	SourceDataDir string

	// Name and Version describe the installed package for the receipt.
	Name    string
	Version string

	// Profile is the shell profile used to persist PATH on unix.
	Profile string
}

// Manager performs installations. Every step is idempotent so the
// installer can be re-run safely over a partially completed state.
type Manager struct {
	log *slog.Logger
}

// NewManager creates an installation manager.
func NewManager(log *slog.Logger) *Manager {
	return &Manager{log: log}
}

// Install creates the layout, copies the artifact and assets, writes
// the receipt, and adds the bin directory to both the persisted and the
// in-process search path.
func (m *Manager) Install(req Request) error {
	layout := NewLayout(req.Prefix)
	if err := layout.Ensure(); err != nil {
		return err
	}

	target := filepath.Join(layout.BinDir, filepath.Base(req.ArtifactPath))
	m.log.Info("installing binary", "target", target)
	if err := fileutil.CopyFile(req.ArtifactPath, target); err != nil {
		return errors.Wrap(err, "installing binary")
	}

	receipt := Receipt{
		Name:        req.Name,
		Version:     req.Version,
		InstalledAt: time.Now().UTC(),
		Binary:      target,
	}

	if info, err := os.Stat(req.SourceDataDir); err == nil && info.IsDir() {
		m.log.Info("installing data assets", "target", layout.DataDir)
		if err := fileutil.CopyDir(req.SourceDataDir, layout.DataDir); err != nil {
			return errors.Wrap(err, "installing data assets")
		}
		receipt.DataDir = layout.DataDir
	} else {
		m.log.Debug("no data directory at source, skipping", "path", req.SourceDataDir)
	}

	if err := writeReceipt(req.Prefix, receipt); err != nil {
		return errors.Wrap(err, "writing install receipt")
	}

	added, err := persistPath(req.Profile, layout.BinDir)
	if err != nil {
		return errors.Wrap(err, "persisting search path")
	}
	if added {
		m.log.Info("added bin directory to search path", "dir", layout.BinDir)
	} else {
		m.log.Debug("bin directory already on persisted search path", "dir", layout.BinDir)
	}

	PrependProcessPath(layout.BinDir)
	return nil
}

// InstalledBinary returns the path the artifact lands at for a given
// prefix and artifact file name.
func InstalledBinary(prefix, artifactName string) string {
	return filepath.Join(NewLayout(prefix).BinDir, artifactName)
}
