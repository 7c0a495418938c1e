package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// compilerCandidates lists the native compiler executables accepted per
// OS, probed in order.
func compilerCandidates(goos string) []string {
	if goos == "windows" {
		return []string{"cl", "gcc", "clang"}
	}
	return []string{"cc", "gcc", "clang"}
}

func compilerRemedy(goos string) string {
	switch goos {
	case "linux":
		return "install a C compiler (e.g. apt install build-essential)"
	case "darwin":
		return "run: xcode-select --install"
	case "windows":
		return "install the Visual Studio Build Tools (C++ workload)"
	default:
		return "install a C compiler"
	}
}

// CompilerCheck verifies a native C compiler is on PATH. Several crates
// in the dependency tree link against C code, so the build needs one.
type CompilerCheck struct {
	goos     string
	lookPath func(string) (string, error)
}

var _ Check = (*CompilerCheck)(nil)

// NewCompilerCheck creates a compiler check for the current OS.
func NewCompilerCheck() *CompilerCheck {
	return &CompilerCheck{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *CompilerCheck) Name() string {
	return "c-compiler"
}

// Category returns the grouping for this check.
func (c *CompilerCheck) Category() string {
	return "compiler"
}

// Run executes the compiler check and returns its result.
func (c *CompilerCheck) Run() *CheckResult {
	candidates := compilerCandidates(c.goos)
	for _, name := range candidates {
		if path, err := c.lookPath(name); err == nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityPass,
				Message:  fmt.Sprintf("found %s", name),
				Details:  map[string]any{"path": path},
			}
		}
	}

	return &CheckResult{
		Name:       c.Name(),
		Category:   c.Category(),
		Status:     SeverityWarning,
		Message:    fmt.Sprintf("no C compiler found (tried %s)", strings.Join(candidates, ", ")),
		RemedyHint: compilerRemedy(c.goos),
	}
}

// alsaHeaders are the locations the ALSA development headers are
// checked at when pkg-config is unavailable.
var alsaHeaders = []string{
	"/usr/include/alsa/asoundlib.h",
	"/usr/local/include/alsa/asoundlib.h",
}

// AudioCheck verifies the ALSA development library on Linux, which the
// game's audio output links against. On other platforms the system
// audio frameworks need no development package, so the check passes
// trivially.
type AudioCheck struct {
	goos     string
	lookPath func(string) (string, error)
	runner   func(name string, args ...string) error
	headers  []string
}

var _ Check = (*AudioCheck)(nil)

// NewAudioCheck creates an audio library check for the current OS.
func NewAudioCheck() *AudioCheck {
	return &AudioCheck{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		runner: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		headers: alsaHeaders,
	}
}

// Name returns the unique identifier for this check.
func (c *AudioCheck) Name() string {
	return "audio-library"
}

// Category returns the grouping for this check.
func (c *AudioCheck) Category() string {
	return "libraries"
}

// Run executes the audio library check and returns its result.
func (c *AudioCheck) Run() *CheckResult {
	if c.goos != "linux" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "no audio development package required on this platform",
		}
	}

	if _, err := c.lookPath("pkg-config"); err == nil {
		if err := c.runner("pkg-config", "--exists", "alsa"); err == nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityPass,
				Message:  "ALSA development library found",
			}
		}
	}

	// Without pkg-config, fall back to the known header locations.
	for _, header := range c.headers {
		if _, err := os.Stat(header); err == nil {
			return &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityPass,
				Message:  "ALSA development headers found",
				Details:  map[string]any{"header": header},
			}
		}
	}

	return &CheckResult{
		Name:       c.Name(),
		Category:   c.Category(),
		Status:     SeverityWarning,
		Message:    "ALSA development library not found; the audio crate will fail to build",
		RemedyHint: "install libasound2-dev (Debian/Ubuntu) or alsa-lib-devel (Fedora)",
	}
}

// ToolchainHomesCheck enumerates installed rustup toolchains. The
// directories are listed explicitly with filepath.Glob instead of
// probing a wildcard path for existence, which is unreliable across
// shells and platforms.
type ToolchainHomesCheck struct {
	home string
}

var _ Check = (*ToolchainHomesCheck)(nil)

// NewToolchainHomesCheck creates a rustup toolchain enumeration check.
func NewToolchainHomesCheck(home string) *ToolchainHomesCheck {
	return &ToolchainHomesCheck{home: home}
}

// Name returns the unique identifier for this check.
func (c *ToolchainHomesCheck) Name() string {
	return "rustup-toolchains"
}

// Category returns the grouping for this check.
func (c *ToolchainHomesCheck) Category() string {
	return "toolchain"
}

// Run executes the toolchain enumeration and returns its result.
func (c *ToolchainHomesCheck) Run() *CheckResult {
	pattern := filepath.Join(c.home, ".rustup", "toolchains", "*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		// Only malformed patterns error here; treat as no matches.
		matches = nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, statErr := os.Stat(m); statErr == nil && info.IsDir() {
			names = append(names, filepath.Base(m))
		}
	}

	if len(names) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no rustup-managed toolchains found",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d rustup toolchain(s) installed", len(names)),
		Details:  map[string]any{"toolchains": names},
	}
}
