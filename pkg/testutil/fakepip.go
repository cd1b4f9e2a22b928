package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// FakePip describes a shell script standing in for a pip executable.
//
// Fields:
//   - VersionOutput: stdout of --version
//   - VersionExit: exit code of --version
//   - Outdated: stdout of list --outdated
//   - ListExit: exit code of list --outdated
//   - InstallExit: exit code of install
type FakePip struct {
	VersionOutput string
	VersionExit   int
	Outdated      string
	ListExit      int
	InstallExit   int
}

// FakePipPaths locates a written fake pip and its logs.
//
// Fields:
//   - Path: The executable script
//   - InstallLog: One line per install invocation with its arguments
//   - ProbeLog: Value of $PIPUPGRADE_PROBE at each install invocation
type FakePipPaths struct {
	Path       string
	InstallLog string
	ProbeLog   string
}

// WriteFakePip writes an executable POSIX shell script named name into dir.
//
// The install branch prints "fake install" on stdout and "fake warning" on
// stderr so tests can check that the streams are passed through.
//
// Parameters:
//   - t: Testing instance; the test is skipped on Windows
//   - dir: Directory to write into, usually t.TempDir()
//   - name: File name of the script
//   - behaviour: Scripted responses
//
// Returns:
//   - FakePipPaths: Locations of the script and its logs
func WriteFakePip(t *testing.T, dir, name string, behaviour FakePip) FakePipPaths {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake pip scripts require a POSIX shell")
	}

	paths := FakePipPaths{
		Path:       filepath.Join(dir, name),
		InstallLog: filepath.Join(dir, name+".install.log"),
		ProbeLog:   filepath.Join(dir, name+".probe.log"),
	}

	script := fmt.Sprintf(`#!/bin/sh
case "$1" in
  --version)
%s    exit %d
    ;;
  list)
%s    exit %d
    ;;
  install)
    echo "$*" >> '%s'
    echo "${PIPUPGRADE_PROBE}" >> '%s'
    echo "fake install"
    echo "fake warning" >&2
    exit %d
    ;;
esac
exit 1
`, heredoc(behaviour.VersionOutput), behaviour.VersionExit,
		heredoc(behaviour.Outdated), behaviour.ListExit,
		paths.InstallLog, paths.ProbeLog, behaviour.InstallExit)

	if err := os.WriteFile(paths.Path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake pip: %v", err)
	}
	return paths
}

// ReadLines returns the non-empty lines of path, or nil if it does not exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PipListOutput renders a `pip list --outdated` table with the standard
// two-line header followed by rows of "name installed latest wheel".
func PipListOutput(rows ...[3]string) string {
	var sb strings.Builder
	sb.WriteString("Package    Version Latest Type\n")
	sb.WriteString("---------- ------- ------ -----\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-10s %-7s %-6s wheel\n", row[0], row[1], row[2])
	}
	return sb.String()
}

// heredoc renders content as a quoted here-document feeding cat.
func heredoc(content string) string {
	if content == "" {
		return ""
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return "    cat <<'PIPUPGRADE_EOF'\n" + content + "PIPUPGRADE_EOF\n"
}
