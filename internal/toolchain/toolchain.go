// Package toolchain detects the Rust toolchain and installs it via
// rustup-init when absent.
package toolchain

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hollowdeep/bootstrap/internal/errors"
	"github.com/hollowdeep/bootstrap/internal/platform"
)

// ProbeResult reports whether the toolchain is usable from the current
// process. Produced fresh on every probe; never cached across runs, since
// a fresh install may only become visible to new sessions.
type ProbeResult struct {
	// Present is true when the build driver launched and reported a version.
	Present bool

	// Version is the version line the build driver printed, when present.
	Version string
}

// CommandRunner executes external commands. The indirection exists so
// tests can substitute canned outcomes for cargo and rustup-init.
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	Output(name string, args ...string) ([]byte, error)

	// Run executes the command with inherited standard streams.
	Run(ctx context.Context, name string, args ...string) error
}

// Fetcher downloads a URL to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Manager probes for and installs the Rust toolchain.
type Manager struct {
	runner  CommandRunner
	fetcher Fetcher
	home    string
	channel string
	log     *slog.Logger
}

// NewManager creates a Manager for the given home directory and
// toolchain channel (stable, beta, nightly).
func NewManager(home, channel string, log *slog.Logger) *Manager {
	return &Manager{
		runner:  execRunner{},
		fetcher: &httpFetcher{},
		home:    home,
		channel: channel,
		log:     log,
	}
}

// NewManagerWithDeps creates a Manager with injected runner and fetcher for testing.
func NewManagerWithDeps(home, channel string, runner CommandRunner, fetcher Fetcher, log *slog.Logger) *Manager {
	return &Manager{
		runner:  runner,
		fetcher: fetcher,
		home:    home,
		channel: channel,
		log:     log,
	}
}

// Probe runs "cargo --version". A launch failure or non-zero exit means
// the toolchain is absent; neither is ever surfaced as an error.
func (m *Manager) Probe() ProbeResult {
	out, err := m.runner.Output("cargo", "--version")
	if err != nil {
		return ProbeResult{}
	}

	version := strings.TrimSpace(string(out))
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return ProbeResult{Present: true, Version: version}
}

// Install downloads rustup-init from its fixed location, runs it
// non-interactively, and prepends the cargo bin directory to the current
// process PATH so a subsequent Probe in the same run can succeed.
//
// A download or installer failure is fatal. Install does not re-probe;
// the caller owns the re-probe and its "new session required" policy.
func (m *Manager) Install(ctx context.Context) error {
	url, err := installerURL()
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "hollowdeep-rustup-*")
	if err != nil {
		return errors.Wrap(err, "creating temp directory")
	}
	defer func() {
		if removeErr := os.RemoveAll(tmpDir); removeErr != nil {
			m.log.Warn("failed to clean up installer temp dir", "error", removeErr)
		}
	}()

	dest := filepath.Join(tmpDir, installerName())
	m.log.Info("downloading toolchain installer", "url", url)
	if err := m.fetcher.Fetch(ctx, url, dest); err != nil {
		return errors.Wrap(errors.ErrDownloadFailed, err.Error())
	}

	m.log.Info("running toolchain installer", "channel", m.channel)
	args := []string{"-y", "--default-toolchain", m.channel}
	if err := m.runner.Run(ctx, dest, args...); err != nil {
		return errors.Wrap(err, "running toolchain installer")
	}

	m.prependProcessPath(platform.CargoBinDir(m.home))
	return nil
}

// prependProcessPath puts dir at the front of the current process PATH.
// This only affects this run; persistence is rustup's own concern.
func (m *Manager) prependProcessPath(dir string) {
	current := os.Getenv("PATH")
	if current == "" {
		os.Setenv("PATH", dir)
		return
	}
	for _, entry := range filepath.SplitList(current) {
		if filepath.Clean(entry) == filepath.Clean(dir) {
			return
		}
	}
	os.Setenv("PATH", dir+string(os.PathListSeparator)+current)
}

// execRunner runs real commands.
type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
