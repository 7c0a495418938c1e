//go:build !windows

package install

import (
	"fmt"
	"os"
	"strings"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// exportLine is the PATH line appended to the user's shell profile.
func exportLine(dir string) string {
	return fmt.Sprintf("export PATH=%q", dir+":$PATH")
}

// persistPath appends an export line for dir to the given profile file,
// unless an identical line is already present. The check is line-exact,
// so re-running the installer never duplicates the entry.
func persistPath(profile, dir string) (bool, error) {
	data, err := os.ReadFile(profile)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrap(err, "reading shell profile")
	}

	line := exportLine(dir)
	for _, existing := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(existing) == line {
			return false, nil
		}
	}

	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, errors.Wrap(err, "opening shell profile")
	}
	defer f.Close()

	entry := "\n# hollowdeep: add install bin dir to PATH\n" + line + "\n"
	if _, err := f.WriteString(entry); err != nil {
		return false, errors.Wrap(err, "updating shell profile")
	}
	return true, nil
}
