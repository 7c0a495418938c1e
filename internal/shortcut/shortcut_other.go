//go:build !windows

package shortcut

func supported() bool {
	return false
}

func create(targetBinaryPath string) error {
	return nil
}
