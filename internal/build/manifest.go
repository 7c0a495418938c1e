// Package build invokes the release build and locates its artifact.
package build

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// Manifest is the subset of Cargo.toml the installer needs: the package
// name determines the artifact, the version goes into the install receipt.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// LoadManifest parses Cargo.toml from the given source checkout.
func LoadManifest(sourceDir string) (*Manifest, error) {
	path := filepath.Join(sourceDir, "Cargo.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSourceNotFound, "no Cargo.toml in %s", sourceDir)
		}
		return nil, errors.Wrap(err, "reading Cargo.toml")
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing Cargo.toml")
	}
	if m.Package.Name == "" {
		return nil, errors.Newf("Cargo.toml in %s has no package name", sourceDir)
	}
	return &m, nil
}

// ArtifactName returns the file name of the built binary.
func (m *Manifest) ArtifactName() string {
	if runtime.GOOS == "windows" {
		return m.Package.Name + ".exe"
	}
	return m.Package.Name
}

// ArtifactPath returns the path of the release binary inside the
// source checkout.
func (m *Manifest) ArtifactPath(sourceDir string) string {
	return filepath.Join(sourceDir, "target", "release", m.ArtifactName())
}

// DataDir returns the path of the assets directory inside the source
// checkout. Its absence is valid; the caller treats that as a no-op.
func DataDir(sourceDir string) string {
	return filepath.Join(sourceDir, "assets")
}
