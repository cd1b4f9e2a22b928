// Package errors provides the error types shared by pipupgrade.
//
// Upgrade errors are fatal for one target only:
//   - InvalidExecutableError: the executable is missing or rejected a query
//   - VersionTooOldError: the reported major version is below the minimum
//   - UpgradeFailedError: the upgrade command exited non-zero
//
// All three implement UpgradeError. Use KindOf to switch on the category:
//
//	switch errors.KindOf(err) {
//	case errors.KindUpgradeFailed:
//	    ...
//	}
//
// ExitError carries a process exit code for failures that stop the whole run,
// such as an unreadable configuration file.
package errors
