// Package bootstrap sequences the installation state machine: probe the
// toolchain, install it if missing, audit build prerequisites, build,
// install, and integrate, with each optional step gated by confirmation.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hollowdeep/bootstrap/internal/build"
	"github.com/hollowdeep/bootstrap/internal/cli/prompt"
	"github.com/hollowdeep/bootstrap/internal/config"
	"github.com/hollowdeep/bootstrap/internal/doctor"
	"github.com/hollowdeep/bootstrap/internal/errors"
	"github.com/hollowdeep/bootstrap/internal/install"
	"github.com/hollowdeep/bootstrap/internal/platform"
	"github.com/hollowdeep/bootstrap/internal/toolchain"
)

// Status describes how a run ended when it did not fail.
type Status int

const (
	// StatusInstalled means the full flow completed.
	StatusInstalled Status = iota

	// StatusBuiltOnly means the build succeeded and the run stopped
	// there because build-only mode was set.
	StatusBuiltOnly

	// StatusNewSessionRequired means the toolchain was freshly
	// installed but is not yet visible to this process; the user must
	// re-run from a new session. This is a graceful outcome.
	StatusNewSessionRequired

	// StatusDeclined means the user declined the install step after a
	// successful build.
	StatusDeclined
)

// Toolchain is the subset of the toolchain manager the flow needs.
type Toolchain interface {
	Probe() toolchain.ProbeResult
	Install(ctx context.Context) error
}

// Auditor produces the build-prerequisite report.
type Auditor interface {
	Audit() *doctor.Report
}

// Builder invokes the build command exactly once.
type Builder interface {
	Run(ctx context.Context) (build.Outcome, error)
}

// Installer performs the file installation.
type Installer interface {
	Install(req install.Request) error
}

// Integrator creates the desktop launcher where supported.
type Integrator interface {
	Supported() bool
	Create(target string) error
}

// Prompter asks yes/no confirmations.
type Prompter interface {
	Confirm(label string, def prompt.Default) bool
}

// Runner holds the wired components for one installation run.
// Config and Platform are read-only throughout.
type Runner struct {
	Config    *config.Config
	Platform  *platform.Info
	Manifest  *build.Manifest
	Toolchain Toolchain
	Auditor   Auditor
	Builder   Builder
	Installer Installer
	Shortcut  Integrator
	Prompter  Prompter
	Log       *slog.Logger
}

// Run executes the flow. Fatal conditions return an ExitError and halt
// immediately; every returned Status maps to exit code 0.
func (r *Runner) Run(ctx context.Context) (Status, error) {
	if status, err := r.ensureToolchain(ctx); err != nil || status == StatusNewSessionRequired {
		return status, err
	}

	if err := r.auditPrerequisites(); err != nil {
		return 0, err
	}

	outcome, err := r.Builder.Run(ctx)
	if err != nil {
		return 0, errors.NewFatal(err, "check that the toolchain is installed correctly")
	}
	if !outcome.Succeeded {
		return 0, errors.NewBuildError(outcome.ExitCode)
	}
	r.Log.Info("build succeeded", "artifact", r.Manifest.ArtifactName())

	if r.Config.BuildOnly {
		r.Log.Info("build-only mode, skipping installation",
			"artifact", r.Manifest.ArtifactPath(r.Config.Source))
		return StatusBuiltOnly, nil
	}

	label := "Install " + r.Manifest.Package.Name + " to " + r.Config.Prefix + "? [Y/n]"
	if !r.Prompter.Confirm(label, prompt.Affirm) {
		r.Log.Info("installation declined, artifact left in place",
			"artifact", r.Manifest.ArtifactPath(r.Config.Source))
		return StatusDeclined, nil
	}

	req := install.Request{
		Prefix:        r.Config.Prefix,
		ArtifactPath:  r.Manifest.ArtifactPath(r.Config.Source),
		SourceDataDir: build.DataDir(r.Config.Source),
		Name:          r.Manifest.Package.Name,
		Version:       r.Manifest.Package.Version,
		Profile:       r.Platform.Profile,
	}
	if err := r.Installer.Install(req); err != nil {
		return 0, errors.NewFatal(err, "check permissions on "+r.Config.Prefix)
	}

	if err := r.integrate(); err != nil {
		return 0, err
	}

	r.Log.Info("installation complete", "prefix", r.Config.Prefix)
	return StatusInstalled, nil
}

// ensureToolchain probes for the toolchain and installs it when absent.
func (r *Runner) ensureToolchain(ctx context.Context) (Status, error) {
	probe := r.Toolchain.Probe()
	if probe.Present {
		r.Log.Info("toolchain found", "version", probe.Version)
		return StatusInstalled, nil
	}

	if r.Config.SkipRust {
		return 0, errors.NewFatal(errors.ErrToolchainMissing,
			"install Rust from https://rustup.rs or drop --skip-rust")
	}

	if !r.Prompter.Confirm("Rust toolchain not found. Install it now? [Y/n]", prompt.Affirm) {
		return 0, errors.NewFatal(
			errors.Wrap(errors.ErrInstallDeclined, "toolchain install is required"),
			"install Rust from https://rustup.rs and re-run")
	}

	if err := r.Toolchain.Install(ctx); err != nil {
		return 0, errors.NewFatal(err, "check your network connection and retry")
	}

	// Probe again; the fresh install may only be visible to new
	// sessions on some platforms, which is a graceful stop, not a failure.
	if probe := r.Toolchain.Probe(); !probe.Present {
		r.Log.Warn("toolchain installed but not visible to this session; " +
			"open a new terminal and re-run the installer")
		return StatusNewSessionRequired, nil
	}
	return StatusInstalled, nil
}

// auditPrerequisites runs the checks and gates missing prerequisites on
// a confirmation. The audit itself is never fatal.
func (r *Runner) auditPrerequisites() error {
	report := r.Auditor.Audit()
	gaps := report.Gaps()
	if len(gaps) == 0 {
		r.Log.Info("all build prerequisites satisfied")
		return nil
	}

	for _, gap := range gaps {
		r.Log.Warn("missing build prerequisite", "name", gap.Name, "remedy", gap.RemedyHint)
	}
	if !r.Prompter.Confirm("Some build prerequisites are missing. Continue anyway? [y/N]", prompt.Decline) {
		return errors.NewFatal(
			errors.Wrap(errors.ErrInstallDeclined, "missing build prerequisites"),
			"install the listed packages and re-run")
	}
	return nil
}

// integrate creates the desktop launcher on platforms that support one.
func (r *Runner) integrate() error {
	if !r.Shortcut.Supported() {
		return nil
	}
	if !r.Prompter.Confirm("Create a Start Menu shortcut? [Y/n]", prompt.Affirm) {
		return nil
	}

	target := install.InstalledBinary(r.Config.Prefix, r.Manifest.ArtifactName())
	if err := r.Shortcut.Create(target); err != nil {
		return errors.NewFatal(err, "the install itself succeeded; only the shortcut failed")
	}
	return nil
}
