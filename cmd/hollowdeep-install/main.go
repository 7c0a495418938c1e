// Package main is the entry point for the hollowdeep installer.
package main

import (
	"fmt"
	"os"

	"github.com/hollowdeep/bootstrap/cmd/hollowdeep-install/commands"
	"github.com/hollowdeep/bootstrap/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
			}
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitFailure)
	}
}
