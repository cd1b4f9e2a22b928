package pip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/testutil"
)

// TestParseOutdated tests the behavior of ParseOutdated.
//
// It verifies:
//   - The two header lines are skipped whatever they contain
//   - Names keep listing order and duplicates
//   - Blank lines after the header contribute nothing
//   - Optional columns are filled when present
func TestParseOutdated(t *testing.T) {
	t.Run("basic listing", func(t *testing.T) {
		out := "Package Version\n---\nfoo 1.0 2.0\nbar 0.5 0.6\n"
		assert.Equal(t, []string{"foo", "bar"}, Names(ParseOutdated(out)))
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		out := "Package Version\n---\n\nfoo 1.0 2.0\n   \n\nbar 0.5 0.6\n\n"
		assert.Equal(t, []string{"foo", "bar"}, Names(ParseOutdated(out)))
	})

	t.Run("duplicates kept", func(t *testing.T) {
		out := "h1\nh2\nfoo 1 2\nfoo 1 3\n"
		assert.Equal(t, []string{"foo", "foo"}, Names(ParseOutdated(out)))
	})

	t.Run("header only", func(t *testing.T) {
		assert.Empty(t, ParseOutdated("Package Version Latest Type\n------- ------- ------ ----\n"))
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseOutdated(""))
	})

	t.Run("header content is not inspected", func(t *testing.T) {
		out := "foo 1.0 2.0\nbar 0.5 0.6\nbaz 3 4\n"
		assert.Equal(t, []string{"baz"}, Names(ParseOutdated(out)))
	})

	t.Run("windows line endings", func(t *testing.T) {
		out := "Package Version\r\n---\r\nfoo 1.0 2.0\r\n"
		assert.Equal(t, []string{"foo"}, Names(ParseOutdated(out)))
	})

	t.Run("columns", func(t *testing.T) {
		out := testutil.PipListOutput([3]string{"requests", "2.28.0", "2.31.0"})
		pkgs := ParseOutdated(out)
		require.Len(t, pkgs, 1)
		assert.Equal(t, OutdatedPackage{Name: "requests", Installed: "2.28.0", Latest: "2.31.0", Type: "wheel"}, pkgs[0])
	})

	t.Run("name only row", func(t *testing.T) {
		pkgs := ParseOutdated("h\nh\n  lonely  \n")
		require.Len(t, pkgs, 1)
		assert.Equal(t, OutdatedPackage{Name: "lonely"}, pkgs[0])
	})
}

// TestOutdatedPackageBump tests the behavior of OutdatedPackage.Bump.
func TestOutdatedPackageBump(t *testing.T) {
	tests := []struct {
		installed, latest, want string
	}{
		{"1.0", "2.0", "major"},
		{"1.2.3", "1.3.0", "minor"},
		{"1.2.3", "1.2.4", "patch"},
		{"1.0", "", ""},
		{"2024.1.1.1", "2024.2.1.1", ""},
	}
	for _, tt := range tests {
		p := OutdatedPackage{Name: "x", Installed: tt.installed, Latest: tt.latest}
		assert.Equal(t, tt.want, p.Bump(), "%s -> %s", tt.installed, tt.latest)
	}
}

// TestListOutdated tests the behavior of Client.ListOutdated.
//
// It verifies:
//   - The listing command is "<target> list --outdated"
//   - Non-zero exit and missing executables are InvalidExecutable
func TestListOutdated(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := testutil.NewFakeRunner().AddPip("pip", "23.0",
			testutil.PipListOutput([3]string{"foo", "1.0", "2.0"}, [3]string{"bar", "0.5", "0.6"}))
		names, err := NewClient(runner, nil).ListOutdated(context.Background(), "pip")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, names)

		calls := runner.CallsTo("pip", "list")
		require.Len(t, calls, 1)
		assert.Equal(t, "pip list --outdated", calls[0].String())
	})

	t.Run("non-zero exit", func(t *testing.T) {
		runner := testutil.NewFakeRunner().On("pip", "list", testutil.Response{Err: &testutil.ExitError{Code: 2}})
		_, err := NewClient(runner, nil).ListOutdated(context.Background(), "pip")
		assert.Equal(t, pkgerrors.KindInvalidExecutable, pkgerrors.KindOf(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := NewClient(testutil.NewFakeRunner(), nil).ListOutdated(context.Background(), "pip")
		assert.Equal(t, pkgerrors.KindInvalidExecutable, pkgerrors.KindOf(err))
	})
}
