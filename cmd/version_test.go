package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipupgrade/pkg/testutil"
)

// withBuildInfo sets the ldflags variables for the duration of a test.
func withBuildInfo(t *testing.T, version, buildOS, buildArch, buildTime, commit string) {
	t.Helper()
	oldVersion, oldOS, oldArch, oldTime, oldCommit := Version, BuildOS, BuildArch, BuildTime, GitCommit
	Version, BuildOS, BuildArch, BuildTime, GitCommit = version, buildOS, buildArch, buildTime, commit
	t.Cleanup(func() {
		Version, BuildOS, BuildArch, BuildTime, GitCommit = oldVersion, oldOS, oldArch, oldTime, oldCommit
	})
}

// TestPrintVersionOutput tests the behavior of printVersionOutput.
//
// It verifies:
//   - Version and Go runtime are always shown
//   - Date and Git lines appear only when set
//   - Runtime line appears only on a platform mismatch
func TestPrintVersionOutput(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		withBuildInfo(t, "dev", "", "", "", "")
		var buf bytes.Buffer
		printVersionOutput(&buf)

		out := buf.String()
		assert.Contains(t, out, "Build:   "+runtime.GOOS+"/"+runtime.GOARCH)
		assert.Contains(t, out, "Go:      "+runtime.Version())
		assert.Contains(t, out, "Version: dev")
		assert.NotContains(t, out, "Date:")
		assert.NotContains(t, out, "Git:")
		assert.NotContains(t, out, "Runtime:")
	})

	t.Run("release build", func(t *testing.T) {
		withBuildInfo(t, "1.2.0", "plan9", "mips", "2024-01-01", "abc123")
		var buf bytes.Buffer
		printVersionOutput(&buf)

		out := buf.String()
		assert.Contains(t, out, "Build:   plan9/mips")
		assert.Contains(t, out, "Runtime: "+runtime.GOOS+"/"+runtime.GOARCH)
		assert.Contains(t, out, "Date:    2024-01-01")
		assert.Contains(t, out, "Git:     abc123")
		assert.Contains(t, out, "Version: 1.2.0")
	})
}

// TestHasArchMismatch tests the behavior of HasArchMismatch.
func TestHasArchMismatch(t *testing.T) {
	withBuildInfo(t, "dev", "", "", "", "")
	assert.False(t, HasArchMismatch())

	BuildOS, BuildArch = runtime.GOOS, runtime.GOARCH
	assert.False(t, HasArchMismatch())

	BuildOS = "plan9"
	assert.True(t, HasArchMismatch())
	assert.Equal(t, "plan9/"+runtime.GOARCH, buildTargetString())
}

// TestVersionCommand tests the version subcommand.
func TestVersionCommand(t *testing.T) {
	res := runCLI(t, testutil.NewFakeRunner(), "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Version: ")
}
