// Package platform determines the OS family and the per-user paths the
// installer works with: the home directory, the default install root, and
// the shell profile that persists PATH changes on unix systems.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// AppName is the directory name used under the per-user data location.
const AppName = "hollowdeep"

// Family identifies the operating system family.
type Family string

const (
	// FamilyLinux covers Linux and other unix-likes that are not macOS.
	FamilyLinux Family = "linux"

	// FamilyDarwin is macOS.
	FamilyDarwin Family = "darwin"

	// FamilyWindows is Windows.
	FamilyWindows Family = "windows"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// Info describes the platform a run executes on. Probed once at startup
// and treated as read-only afterwards.
type Info struct {
	// Family is the OS family.
	Family Family

	// Home is the user's home directory.
	Home string

	// Profile is the shell profile file used to persist PATH changes.
	// Empty on Windows, where persistence goes through the registry.
	Profile string
}

// Probe determines the current platform.
func Probe() (*Info, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(ErrHomeDirNotFound, err.Error())
	}

	family := FamilyLinux
	switch runtime.GOOS {
	case "darwin":
		family = FamilyDarwin
	case "windows":
		family = FamilyWindows
	}

	info := &Info{
		Family: family,
		Home:   home,
	}
	if family != FamilyWindows {
		info.Profile = profileScript(home)
	}
	return info, nil
}

// DefaultInstallRoot returns the default per-user install root.
// On Linux this is ~/.local/share/hollowdeep; macOS and Windows use
// their native application-data locations.
func DefaultInstallRoot() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// CargoBinDir returns the directory rustup places toolchain binaries in.
func CargoBinDir(home string) string {
	return filepath.Join(home, ".cargo", "bin")
}

// profileScript picks the profile file to persist PATH changes to.
// Existing rc files win over the SHELL heuristic so a user with both
// bash and zsh configured gets the file they actually maintain.
func profileScript(home string) string {
	if _, err := os.Stat(filepath.Join(home, ".bashrc")); err == nil {
		return filepath.Join(home, ".bashrc")
	}
	if _, err := os.Stat(filepath.Join(home, ".zshrc")); err == nil {
		return filepath.Join(home, ".zshrc")
	}
	shell := os.Getenv("SHELL")
	switch {
	case strings.Contains(shell, "zsh"):
		return filepath.Join(home, ".zshrc")
	case strings.Contains(shell, "bash"):
		return filepath.Join(home, ".bashrc")
	}
	return filepath.Join(home, ".profile")
}
