package pip

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	pkgerrors "github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/testutil"
)

// TestClientAgainstScript runs all three queries against a real child process.
//
// It verifies:
//   - The version, listing and upgrade commands are spawned with the expected arguments
//   - Extra install arguments precede the package names
//   - Configured environment variables reach the upgrade process
func TestClientAgainstScript(t *testing.T) {
	dir := t.TempDir()
	fake := testutil.WriteFakePip(t, dir, "pip", testutil.FakePip{
		VersionOutput: "pip 23.1.2 from /site-packages/pip (python 3.11)",
		Outdated:      testutil.PipListOutput([3]string{"foo", "1.0", "2.0"}, [3]string{"bar", "0.5", "0.6"}),
	})

	runner := cmdexec.NewRunner(map[string]string{"PIPUPGRADE_PROBE": "probe-value"})
	client := NewClient(runner, []string{"--user"})
	ctx := context.Background()

	v, err := client.CheckVersion(ctx, fake.Path)
	require.NoError(t, err)
	assert.Equal(t, 23, v.Major)

	names, err := client.ListOutdated(ctx, fake.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, names)

	var stdout, stderr bytes.Buffer
	require.NoError(t, client.Upgrade(ctx, fake.Path, names, &stdout, &stderr))
	assert.Equal(t, "fake install\n", stdout.String())
	assert.Equal(t, "fake warning\n", stderr.String())

	assert.Equal(t, []string{"install -U --user foo bar"}, testutil.ReadLines(t, fake.InstallLog))
	assert.Equal(t, []string{"probe-value"}, testutil.ReadLines(t, fake.ProbeLog))
}

// TestClientAgainstFailingScript checks exit code handling on real processes.
//
// It verifies:
//   - A failing version query is InvalidExecutable
//   - A failing install keeps its exit code
func TestClientAgainstFailingScript(t *testing.T) {
	dir := t.TempDir()
	runner := cmdexec.NewRunner(nil)
	ctx := context.Background()

	broken := testutil.WriteFakePip(t, dir, "broken", testutil.FakePip{VersionExit: 1})
	_, err := NewClient(runner, nil).CheckVersion(ctx, broken.Path)
	assert.Equal(t, pkgerrors.KindInvalidExecutable, pkgerrors.KindOf(err))

	failing := testutil.WriteFakePip(t, dir, "failing", testutil.FakePip{
		VersionOutput: "pip 23.0 from /x",
		InstallExit:   2,
	})
	err = NewClient(runner, nil).Upgrade(ctx, failing.Path, []string{"foo"}, &bytes.Buffer{}, &bytes.Buffer{})
	ufe, ok := pkgerrors.IsUpgradeFailed(err)
	require.True(t, ok)
	assert.Equal(t, 2, ufe.Code)
}
