// Package errors provides error handling conventions for the installer CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, ierrors.ErrToolchainMissing) {
//	    // handle missing toolchain
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): run completed, or exited gracefully after a fresh
//     toolchain install that needs a new session
//   - ExitFailure (1): any fatal condition
//
// Build failures are the exception: the build command's own exit code is
// carried through verbatim via [NewBuildError], so a caller observing the
// process exit status sees the same code cargo reported.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *ierrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
