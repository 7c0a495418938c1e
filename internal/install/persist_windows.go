//go:build windows

package install

import (
	"golang.org/x/sys/windows/registry"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// persistPath appends dir to the user's persisted PATH in the registry,
// unless it is already present as an entry. The profile argument is
// unused on Windows. New sessions pick the value up; existing ones
// keep their environment.
func persistPath(profile, dir string) (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return false, errors.Wrap(err, "opening user environment key")
	}
	defer key.Close()

	current, _, err := key.GetStringValue("Path")
	if err != nil && err != registry.ErrNotExist {
		return false, errors.Wrap(err, "reading user Path value")
	}

	if ContainsEntry(current, dir) {
		return false, nil
	}

	updated := AppendEntry(current, dir)
	if err := key.SetStringValue("Path", updated); err != nil {
		return false, errors.Wrap(err, "writing user Path value")
	}
	return true, nil
}
