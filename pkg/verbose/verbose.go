// Package verbose provides debug logging for pipupgrade, enabled with --verbose.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = newLogger(os.Stderr)
)

// newLogger builds the debug logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		logger = newLogger(w)
	}
}

// active returns the logger if verbose logging is enabled, nil otherwise.
func active() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if l := active(); l != nil {
		l.Debugf(format, args...)
	}
}

// Info prints an informational verbose message if enabled.
func Info(msg string) {
	if l := active(); l != nil {
		l.Debug(msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// CommandExec logs that a command is about to be executed.
//
// Parameters:
//   - name: The executable being run
//   - args: Its arguments
func CommandExec(name string, args []string) {
	if l := active(); l != nil {
		l.Debug("Executing", "cmd", commandLine(name, args))
	}
}

// CommandResult logs command execution results if enabled.
//
// It performs the following operations:
//   - Logs the command status (succeeded or failed) with exit code
//   - Truncates long command strings to 60 characters for readability
//   - If output is provided, logs up to 5 lines with truncation
//
// Parameters:
//   - name: The executable that was run
//   - args: Its arguments
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: Captured output to show, may be empty
func CommandResult(name string, args []string, exitCode int, output string) {
	l := active()
	if l == nil {
		return
	}
	cmd := truncate(commandLine(name, args), 60)
	if exitCode == 0 {
		l.Debug("Command succeeded", "cmd", cmd)
	} else {
		l.Debug("Command failed", "cmd", cmd, "exit", exitCode)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return
	}
	lines := strings.Split(output, "\n")
	if len(lines) > 5 {
		for _, line := range lines[:3] {
			l.Debug("| " + truncate(line, 100))
		}
		l.Debug(fmt.Sprintf("| ... (%d more lines)", len(lines)-3))
		return
	}
	for _, line := range lines {
		l.Debug("| " + truncate(line, 100))
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
func ConfigLoaded(path string) {
	if l := active(); l != nil {
		l.Debug("Config loaded", "path", path)
	}
}

// PackageExcluded logs that a package was dropped from an upgrade.
//
// Parameters:
//   - target: The executable reference being processed
//   - name: The package that was excluded
func PackageExcluded(target, name string) {
	if l := active(); l != nil {
		l.Debug("Package excluded by config", "target", target, "package", name)
	}
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
