//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

func supported() bool {
	return true
}

// create writes a Start-menu .lnk via the WScript.Shell COM object,
// driven through PowerShell. The shortcut's working directory is the
// binary's folder so the game finds its data files.
func create(targetBinaryPath string) error {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return errors.New("APPDATA is not set")
	}
	linkPath := filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Hollowdeep.lnk")

	script := fmt.Sprintf(
		`$s = (New-Object -ComObject WScript.Shell).CreateShortcut('%s'); `+
			`$s.TargetPath = '%s'; `+
			`$s.WorkingDirectory = '%s'; `+
			`$s.Description = '%s'; `+
			`$s.Save()`,
		linkPath, targetBinaryPath, filepath.Dir(targetBinaryPath), Description,
	)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "creating shortcut: %s", out)
	}
	return nil
}
