// Package testutil provides shared test utilities for pipupgrade packages.
package testutil

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// Response is the scripted result of one FakeRunner invocation.
//
// Fields:
//   - Stdout: Written to stdout (captured for Output, streamed for Stream)
//   - Stderr: Written to stderr for Stream; ignored by Output
//   - Err: Returned error; use ExitError for a non-zero exit
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// Call records one FakeRunner invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExitError is a test double for *exec.ExitError.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the scripted exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// FakeRunner is an in-memory cmdexec.Runner.
//
// Responses are keyed by "<name> <first arg>", e.g. "pip --version",
// "pip list", "pip install". Unknown keys behave like a missing executable.
type FakeRunner struct {
	mu        sync.Mutex
	Responses map[string]Response
	Calls     []Call
}

// NewFakeRunner creates a FakeRunner with no responses.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]Response)}
}

// On registers the response for the "<name> <verb>" key and returns the runner.
func (f *FakeRunner) On(name, verb string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[name+" "+verb] = resp
	return f
}

// AddPip registers a well-behaved pip at name reporting version and outdated listing.
//
// Parameters:
//   - name: Executable reference
//   - version: Version reported by --version (e.g. "23.1.2")
//   - outdated: Full stdout of `list --outdated`, header included
//
// Returns:
//   - *FakeRunner: The runner for chaining
func (f *FakeRunner) AddPip(name, version, outdated string) *FakeRunner {
	f.On(name, "--version", Response{Stdout: fmt.Sprintf("pip %s from /site-packages/pip (python 3.11)\n", version)})
	f.On(name, "list", Response{Stdout: outdated})
	f.On(name, "install", Response{Stdout: "Successfully installed\n"})
	return f
}

// Output implements cmdexec.Runner.
func (f *FakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	resp, err := f.respond(ctx, name, args)
	if err != nil {
		return nil, err
	}
	return []byte(resp.Stdout), resp.Err
}

// Stream implements cmdexec.Runner.
func (f *FakeRunner) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	resp, err := f.respond(ctx, name, args)
	if err != nil {
		return err
	}
	_, _ = io.WriteString(stdout, resp.Stdout)
	_, _ = io.WriteString(stderr, resp.Stderr)
	return resp.Err
}

// CallsTo returns the recorded calls whose key matches "<name> <verb>".
func (f *FakeRunner) CallsTo(name, verb string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name && len(c.Args) > 0 && c.Args[0] == verb {
			calls = append(calls, c)
		}
	}
	return calls
}

func (f *FakeRunner) respond(ctx context.Context, name string, args []string) (Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})

	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("%s interrupted: %w", name, err)
	}

	key := name
	if len(args) > 0 {
		key += " " + args[0]
	}
	resp, ok := f.Responses[key]
	if !ok {
		return Response{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return resp, nil
}
