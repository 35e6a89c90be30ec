// Package confirm gates store mutations on operator approval.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options holds the prompt's input and output. AutoApprove answers yes
// without asking, for scripted runs.
type Options struct {
	Reader      *bufio.Reader
	Writer      io.Writer
	AutoApprove bool
}

// DefaultOptions prompts on the controlling terminal.
func DefaultOptions() Options {
	return Options{
		Reader: bufio.NewReader(os.Stdin),
		Writer: os.Stdout,
	}
}

// Ask prints the prompt and waits for one line of input. Only an explicit
// "y" or "yes" approves; anything else declines, including an empty line or
// end of input. Declining is not an error.
func Ask(opts Options, prompt string) (bool, error) {
	if opts.AutoApprove {
		return true, nil
	}

	fmt.Fprintf(opts.Writer, "%s [y/N]: ", prompt)

	input, err := opts.Reader.ReadString('\n')
	if err != nil && input == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
