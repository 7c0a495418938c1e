//go:build !windows

package platform

import "os"

// IsElevated reports whether the process runs with superuser privileges.
// No step in the install flow consults this today; the installer targets
// per-user locations and never requires elevation.
func IsElevated() bool {
	return os.Geteuid() == 0
}
