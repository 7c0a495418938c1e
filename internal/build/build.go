package build

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// Outcome is the result of exactly one build command invocation.
type Outcome struct {
	// Succeeded is true when the build exited zero.
	Succeeded bool

	// ExitCode is the build command's exit status, preserved verbatim
	// so distinct failure modes stay distinguishable.
	ExitCode int
}

// CommandRunner executes the build command and reports its exit code.
// Tests substitute scripted outcomes; the real implementation inherits
// the standard streams so cargo's own diagnostics reach the user directly.
type CommandRunner interface {
	// Run executes the command in dir and returns its exit code.
	// A non-nil error means the command could not be launched at all.
	Run(ctx context.Context, dir string, name string, args ...string) (int, error)
}

// Orchestrator invokes the build command once, in release mode.
type Orchestrator struct {
	sourceDir string
	runner    CommandRunner
	log       *slog.Logger
}

// NewOrchestrator creates an Orchestrator for the given source checkout.
func NewOrchestrator(sourceDir string, log *slog.Logger) *Orchestrator {
	return &Orchestrator{sourceDir: sourceDir, runner: execRunner{}, log: log}
}

// NewOrchestratorWithRunner creates an Orchestrator with an injected runner for testing.
func NewOrchestratorWithRunner(sourceDir string, runner CommandRunner, log *slog.Logger) *Orchestrator {
	return &Orchestrator{sourceDir: sourceDir, runner: runner, log: log}
}

// Run invokes "cargo build --release" exactly once, synchronously.
//
// A non-zero build exit is reported through the Outcome, not the error;
// the error is reserved for failures to launch the command at all.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	o.log.Info("building release artifact", "source", o.sourceDir)

	code, err := o.runner.Run(ctx, o.sourceDir, "cargo", "build", "--release")
	if err != nil {
		return Outcome{}, errors.Wrap(err, "launching build command")
	}
	return Outcome{Succeeded: code == 0, ExitCode: code}, nil
}

// execRunner runs the real build with inherited standard streams.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
