// Package cmdexec runs package-manager executables for pipupgrade.
//
// Commands are executed directly (no shell), either with stdout captured for
// parsing or with both streams passed through to the caller's writers.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"sort"

	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// Runner executes an executable with arguments.
//
// Output captures stdout and discards stderr from the caller's view.
// Stream passes stdout and stderr through to the given writers.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

// ExecRunner is the os/exec backed Runner.
//
// Fields:
//   - Env: Extra environment variables added to the inherited environment
//   - Dir: Working directory for child processes; empty means the current one
type ExecRunner struct {
	Env map[string]string
	Dir string
}

// NewRunner creates an ExecRunner with the given extra environment.
//
// Parameters:
//   - env: Variables to add on top of os.Environ(); values may reference
//     other variables ($HOME, ${PATH}) and are expanded once
//
// Returns:
//   - *ExecRunner: New runner
func NewRunner(env map[string]string) *ExecRunner {
	return &ExecRunner{Env: env}
}

// Output runs name with args and returns its standard output.
//
// Standard error is captured for debug logging only. A non-zero exit is
// returned as *exec.ExitError; a cancelled context is returned wrapped so that
// errors.Is(err, context.Canceled) holds.
//
// Parameters:
//   - ctx: Context whose cancellation kills the child process group
//   - name: Executable path or command name
//   - args: Arguments passed verbatim
//
// Returns:
//   - []byte: Captured stdout (partial output on failure)
//   - error: Start, exit, or cancellation error
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	err := r.run(ctx, &stdout, &stderr, name, args)
	verbose.CommandResult(name, args, resultCode(err), stderr.String())
	return stdout.Bytes(), err
}

// Stream runs name with args, copying its stdout and stderr to the given writers.
//
// Parameters:
//   - ctx: Context whose cancellation kills the child process group
//   - stdout: Destination for the child's standard output
//   - stderr: Destination for the child's standard error
//   - name: Executable path or command name
//   - args: Arguments passed verbatim
//
// Returns:
//   - error: Start, exit, or cancellation error
func (r *ExecRunner) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	err := r.run(ctx, stdout, stderr, name, args)
	verbose.CommandResult(name, args, resultCode(err), "")
	return err
}

func (r *ExecRunner) run(ctx context.Context, stdout, stderr io.Writer, name string, args []string) error {
	verbose.CommandExec(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = buildEnv(os.Environ(), r.Env)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Own process group so cancellation also reaches processes the child spawned.
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%s interrupted: %w", name, ctx.Err())
	}
	return err
}

// buildEnv appends extra variables to base in a stable order.
//
// Values are expanded with os.ExpandEnv so that config entries such as
// "PIP_CACHE_DIR: $HOME/.cache/pip" work as expected.
func buildEnv(base []string, extra map[string]string) []string {
	environ := append([]string(nil), base...)
	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		environ = append(environ, fmt.Sprintf("%s=%s", key, os.ExpandEnv(extra[key])))
	}
	return environ
}

// exitCoder is implemented by *exec.ExitError and by test doubles.
type exitCoder interface {
	ExitCode() int
}

// ExitCode extracts the exit code from an error carrying an exit status.
//
// Parameters:
//   - err: Error returned by a Runner
//
// Returns:
//   - int: The process exit code (-1 if it was killed by a signal)
//   - bool: true if err carries an exit status, false otherwise
func ExitCode(err error) (int, bool) {
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode(), true
	}
	return 0, false
}

// IsNotFound reports whether err means the executable could not be located or started.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

// IsCanceled reports whether err was caused by context cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// resultCode maps err to the code shown in debug logs.
func resultCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := ExitCode(err); ok {
		return code
	}
	return -1
}
