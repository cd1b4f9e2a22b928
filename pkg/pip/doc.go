// Package pip talks to a pip-compatible executable.
//
// It runs three queries against a target executable and parses their text
// output:
//
//	<exe> --version          -> CheckVersion
//	<exe> list --outdated    -> ListOutdated
//	<exe> install -U <pkgs>  -> Upgrade
//
// Every failure is returned as one of the upgrade errors from pkg/errors so
// callers can report it and move on to the next target.
package pip
