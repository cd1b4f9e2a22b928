package pip

import (
	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
)

// Client runs pip queries through a Runner.
//
// Fields:
//   - Runner: Executes the target executable
//   - InstallArgs: Extra arguments inserted after "install -U", e.g. "--user"
type Client struct {
	Runner      cmdexec.Runner
	InstallArgs []string
}

// NewClient creates a Client backed by runner.
func NewClient(runner cmdexec.Runner, installArgs []string) *Client {
	return &Client{Runner: runner, InstallArgs: installArgs}
}
