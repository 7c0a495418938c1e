// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Default is the resolution of a confirmation prompt when the user
// presses Enter without typing anything.
type Default bool

const (
	// Affirm resolves empty input to "yes". Prompts carrying this
	// default are phrased "...? [Y/n]".
	Affirm Default = true

	// Decline resolves empty input to "no". Prompts carrying this
	// default are phrased "...? [y/N]".
	Decline Default = false
)

// Confirmer sequences yes/no confirmations against a reader/writer pair.
// With AssumeYes set, every prompt resolves affirmatively without
// touching the reader.
//
// The reader is buffered once and shared across calls, so each Confirm
// consumes exactly one line. Lines buffered ahead of the current prompt
// answer the following prompts, which is what piped input relies on.
type Confirmer struct {
	in        *bufio.Reader
	out       io.Writer
	AssumeYes bool
}

// NewConfirmer creates a Confirmer using stdin and stdout.
func NewConfirmer() *Confirmer {
	return NewConfirmerWithIO(os.Stdin, os.Stdout)
}

// NewConfirmerWithIO creates a Confirmer with custom reader and writer for testing.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(r), out: w}
}

// Confirm prints the label and reads a single line of input.
//
// Resolution rules, which callers rely on:
//   - empty input resolves to def
//   - "y" / "yes" (any case) resolves to true
//   - anything else resolves to false
//   - EOF resolves to def, so piped runs never block or surprise
//
// The label's casing must match the default: "[Y/n]" with Affirm,
// "[y/N]" with Decline.
func (c *Confirmer) Confirm(label string, def Default) bool {
	if c.AssumeYes {
		return true
	}

	fmt.Fprintf(c.out, "%s ", label)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return bool(def)
	}

	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "":
		return bool(def)
	case "y", "yes":
		return true
	default:
		return false
	}
}
