package testutil

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFakeRunner tests the behavior of FakeRunner.
//
// It verifies:
//   - Responses are matched on name and first argument
//   - Unknown commands look like a missing executable
//   - Every call is recorded, including failed ones
//   - A cancelled context wraps context.Canceled
func TestFakeRunner(t *testing.T) {
	f := NewFakeRunner().
		AddPip("pip", "23.0", "h\nh\nfoo 1 2\n").
		On("pip", "install", Response{Stdout: "out", Stderr: "err", Err: &ExitError{Code: 2}})
	ctx := context.Background()

	out, err := f.Output(ctx, "pip", "--version")
	require.NoError(t, err)
	assert.Equal(t, "pip 23.0 from /site-packages/pip (python 3.11)\n", string(out))

	var stdout, stderr bytes.Buffer
	err = f.Stream(ctx, &stdout, &stderr, "pip", "install", "-U", "foo")
	assert.Equal(t, "out", stdout.String())
	assert.Equal(t, "err", stderr.String())
	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.ExitCode())
	assert.Equal(t, "exit status 2", ee.Error())

	_, err = f.Output(ctx, "pip3", "--version")
	assert.True(t, errors.Is(err, exec.ErrNotFound))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f.Output(cancelled, "pip", "list", "--outdated")
	assert.ErrorIs(t, err, context.Canceled)

	assert.Len(t, f.Calls, 4)
	assert.Equal(t, []Call{{Name: "pip", Args: []string{"install", "-U", "foo"}}}, f.CallsTo("pip", "install"))
}

// TestPipListOutput tests the behavior of PipListOutput.
func TestPipListOutput(t *testing.T) {
	out := PipListOutput([3]string{"foo", "1.0", "2.0"})
	assert.Equal(t, "Package    Version Latest Type\n---------- ------- ------ -----\nfoo        1.0     2.0    wheel\n", out)
}

// TestWriteFakePip tests that the script answers each query.
func TestWriteFakePip(t *testing.T) {
	dir := t.TempDir()
	paths := WriteFakePip(t, dir, "pip", FakePip{
		VersionOutput: "pip 23.0 from /x",
		Outdated:      PipListOutput(),
		InstallExit:   3,
	})

	out, err := exec.Command(paths.Path, "--version").Output()
	require.NoError(t, err)
	assert.Equal(t, "pip 23.0 from /x\n", string(out))

	err = exec.Command(paths.Path, "install", "-U", "foo").Run()
	var ee *exec.ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.ExitCode())
	assert.Equal(t, []string{"install -U foo"}, ReadLines(t, paths.InstallLog))
	assert.Nil(t, ReadLines(t, paths.ProbeLog+".missing"))
}

// TestConfigBuilder tests the behavior of ConfigBuilder.
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfig().
		WithTargets("pip", "pip3").
		WithExclude("setuptools").
		WithInstallArgs("--user").
		WithEnv("A", "1").
		Build()

	assert.Equal(t, []string{"pip", "pip3"}, cfg.Targets)
	assert.Equal(t, []string{"setuptools"}, cfg.Exclude)
	assert.Equal(t, []string{"--user"}, cfg.InstallArgs)
	assert.Equal(t, map[string]string{"A": "1"}, cfg.Env)
	assert.True(t, cfg.IsExcluded("SetupTools"))
}
