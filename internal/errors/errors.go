package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the installer.
const (
	// ExitSuccess indicates the run completed, including the graceful
	// "toolchain installed, open a new session" early exit.
	ExitSuccess = 0

	// ExitFailure indicates a fatal condition (missing toolchain with
	// install skipped, declined prerequisite, download failure, etc.).
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrToolchainMissing indicates the Rust toolchain is absent and
	// installation was skipped or declined.
	ErrToolchainMissing = errors.New("rust toolchain not found")

	// ErrInstallDeclined indicates the user declined a required step.
	ErrInstallDeclined = errors.New("installation declined")

	// ErrDownloadFailed indicates the toolchain installer could not be fetched.
	ErrDownloadFailed = errors.New("installer download failed")

	// ErrBuildFailed indicates the build command exited with a non-zero status.
	ErrBuildFailed = errors.New("build failed")

	// ErrSourceNotFound indicates the source checkout is missing or has no manifest.
	ErrSourceNotFound = errors.New("source checkout not found")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	// For build failures this is the build command's own exit code,
	// carried through verbatim.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewFatal creates an ExitError with ExitFailure code and a suggestion.
func NewFatal(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// NewBuildError creates an ExitError carrying the build command's exit code.
// The code is propagated unchanged so the caller can distinguish failure
// modes the toolchain encodes in its exit status.
func NewBuildError(code int) *ExitError {
	return &ExitError{
		Err:  errors.Wrapf(ErrBuildFailed, "cargo exited with code %d", code),
		Code: code,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code an error should terminate the process with.
// Non-ExitError errors map to ExitFailure; nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
