// Package shortcut creates a desktop launcher for the installed binary
// on platforms that have one. Everywhere else the operation is a no-op
// that reports success.
package shortcut

// Description is the human-readable text attached to the launcher.
const Description = "Hollowdeep, a terminal roguelike"

// Supported reports whether this platform has a desktop launcher concept.
func Supported() bool {
	return supported()
}

// Create makes a launcher pointing at the installed binary. The working
// directory is the binary's containing folder. On unsupported platforms
// this succeeds trivially.
func Create(targetBinaryPath string) error {
	return create(targetBinaryPath)
}
