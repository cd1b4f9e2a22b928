package pip

import (
	"context"
	"io"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	"github.com/ajxudir/pipupgrade/pkg/errors"
)

// UpgradeArgs builds the argument list for the upgrade command.
//
// Returns:
//   - []string: "install", "-U", the client's InstallArgs, then names
func (c *Client) UpgradeArgs(names []string) []string {
	args := make([]string, 0, 2+len(c.InstallArgs)+len(names))
	args = append(args, "install", "-U")
	args = append(args, c.InstallArgs...)
	args = append(args, names...)
	return args
}

// Upgrade runs `<target> install -U <names...>` with output streamed live.
//
// An empty names slice is a no-op and spawns nothing.
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: Executable reference
//   - names: Packages to upgrade, passed in order
//   - stdout: Receives the child's standard output
//   - stderr: Receives the child's standard error
//
// Returns:
//   - error: UpgradeFailedError carrying the exit code, InvalidExecutableError
//     if the process could not be started, or a cancellation error
func (c *Client) Upgrade(ctx context.Context, target string, names []string, stdout, stderr io.Writer) error {
	if len(names) == 0 {
		return nil
	}

	err := c.Runner.Stream(ctx, stdout, stderr, target, c.UpgradeArgs(names)...)
	if err == nil {
		return nil
	}
	if cmdexec.IsCanceled(err) {
		return err
	}
	if code, ok := cmdexec.ExitCode(err); ok {
		return errors.NewUpgradeFailedError(target, code)
	}
	return errors.NewInvalidExecutableError(target, err)
}
