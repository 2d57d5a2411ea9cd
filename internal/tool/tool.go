// Package tool runs the external X11 utilities and defines the two error
// kinds shared by every caller: the command could not run, or it ran and
// printed something we could not parse.
package tool

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/tabletray/internal/logger"
)

// Runner executes a command and returns its standard output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecError reports a command that could not be started or exited non-zero.
type ExecError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *ExecError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", cmdline, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", cmdline, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// MalformedOutputError reports output that does not have the expected shape.
type MalformedOutputError struct {
	Tool   string
	LineNo int
	Line   string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("%s returned malformed output at line %d (%s): %q", e.Tool, e.LineNo, e.Reason, e.Line)
	}
	return fmt.Sprintf("%s returned malformed output (%s): %q", e.Tool, e.Reason, e.Line)
}

// IsExecError reports whether err wraps an *ExecError.
func IsExecError(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr)
}

// IsMalformed reports whether err wraps a *MalformedOutputError.
func IsMalformed(err error) bool {
	var malformed *MalformedOutputError
	return errors.As(err, &malformed)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewRunner returns the Runner used outside of tests.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(name string, args ...string) ([]byte, error) {
	logger.Debug("Running command", "command", name, "args", args)

	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, &ExecError{
			Command: name,
			Args:    args,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return output, nil
}

// Available reports whether name can be found in PATH.
func Available(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
