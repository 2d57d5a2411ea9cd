// Package tooltest provides a scripted tool.Runner for tests.
package tooltest

import (
	"errors"
	"strings"

	"github.com/bnema/tabletray/internal/tool"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is what the runner returns for a command line.
type Response struct {
	Output string
	Err    error
}

// Runner answers from a table keyed by command line ("xinput list").
// Unknown command lines fail like a missing binary.
type Runner struct {
	Responses map[string]Response
	Calls     []Call
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{Responses: make(map[string]Response)}
}

// On registers the output for a command line.
func (r *Runner) On(cmdline, output string) *Runner {
	r.Responses[cmdline] = Response{Output: output}
	return r
}

// Fail registers a failure for a command line.
func (r *Runner) Fail(cmdline string, err error) *Runner {
	r.Responses[cmdline] = Response{Err: err}
	return r
}

func (r *Runner) Run(name string, args ...string) ([]byte, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, call)

	resp, ok := r.Responses[call.String()]
	if !ok {
		return nil, &tool.ExecError{Command: name, Args: args, Err: errors.New("executable file not found in $PATH")}
	}
	if resp.Err != nil {
		return nil, &tool.ExecError{Command: name, Args: args, Err: resp.Err}
	}
	return []byte(resp.Output), nil
}

// CommandLines returns every recorded call as a command line.
func (r *Runner) CommandLines() []string {
	var lines []string
	for _, c := range r.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
