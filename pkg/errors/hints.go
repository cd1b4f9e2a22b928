package errors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CommandResolutionHints maps executable base names to installation instructions.
var CommandResolutionHints = map[string]string{
	"pip":     "Install Python: https://python.org/downloads/",
	"pip3":    "Install Python: https://python.org/downloads/",
	"pipx":    "Install pipx: https://pipx.pypa.io/stable/installation/",
	"python":  "Install Python: https://python.org/downloads/",
	"python3": "Install Python: https://python.org/downloads/",
}

// GetHint returns an actionable resolution hint for err.
//
// Hints are looked up by error kind; for invalid executables the executable's
// base name is matched against CommandResolutionHints first.
//
// Parameters:
//   - err: The error to look up, may be wrapped
//
// Returns:
//   - string: Resolution hint; empty string if none applies
func GetHint(err error) string {
	ue, ok := IsUpgradeError(err)
	if !ok {
		return ""
	}

	switch ue.Kind() {
	case KindInvalidExecutable:
		if hint := GetHintForCommand(ue.TargetName()); hint != "" {
			return hint
		}
		return fmt.Sprintf("Ensure '%s' is installed and available in your PATH.", ue.TargetName())
	case KindVersionTooOld:
		return fmt.Sprintf("Upgrade pip itself first: %s install -U pip", ue.TargetName())
	case KindUpgradeFailed:
		return "Re-run the upgrade with the output above and resolve the reported conflict."
	}
	return ""
}

// GetHintForCommand returns the installation hint for an executable reference.
//
// Parameters:
//   - target: Command name or path; only the base name without extension is matched
//
// Returns:
//   - string: Installation hint, or empty string if the command is unknown
func GetHintForCommand(target string) string {
	base := filepath.Base(target)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return CommandResolutionHints[strings.ToLower(base)]
}
