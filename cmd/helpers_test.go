package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	"github.com/ajxudir/pipupgrade/pkg/testutil"
	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// cliRun is the captured result of one root command execution.
type cliRun struct {
	stdout string
	stderr string
	err    error
	env    map[string]string
}

// resetFlags restores every flag variable to its default before and after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		verboseFlag = false
		versionFlag = false
		configFlag = ""
		dryRunFlag = false
		noColorFlag = false
		verbose.Disable()
		verbose.SetWriter(os.Stderr)
	}
	reset()
	prevColor := color.NoColor
	t.Cleanup(func() {
		reset()
		color.NoColor = prevColor
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

// chdir switches the working directory to dir and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// runCLI executes the root command with args against runner.
//
// The working directory is switched to an empty temp dir so no stray
// .pipupgrade.yml is picked up.
func runCLI(t *testing.T, runner cmdexec.Runner, args ...string) cliRun {
	t.Helper()
	resetFlags(t)
	chdir(t, t.TempDir())

	var res cliRun
	prevRunner := newRunner
	newRunner = func(env map[string]string) cmdexec.Runner {
		res.env = env
		return runner
	}
	t.Cleanup(func() { newRunner = prevRunner })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	res.err = ExecuteTest()
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

// withRunner makes the commands use runner for the rest of the test.
func withRunner(t *testing.T, runner cmdexec.Runner) {
	t.Helper()
	prev := newRunner
	newRunner = func(map[string]string) cmdexec.Runner { return runner }
	t.Cleanup(func() { newRunner = prev })
}

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipupgrade.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func listing(rows ...[3]string) string {
	return testutil.PipListOutput(rows...)
}
