package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
//
// Failures of individual targets never change the exit code; only problems
// that prevent the run from starting do.
const (
	// ExitSuccess indicates the run completed, even if some targets failed.
	ExitSuccess = 0

	// ExitFailure indicates an unexpected error stopped the run.
	ExitFailure = 2

	// ExitConfigError indicates the configuration could not be loaded.
	ExitConfigError = 3
)

// Kind identifies one of the upgrade error categories.
type Kind int

const (
	// KindNone is returned by KindOf for errors outside the upgrade category.
	KindNone Kind = iota

	// KindInvalidExecutable means the executable could not be run or rejected a query.
	KindInvalidExecutable

	// KindVersionTooOld means the executable reported a major version below the minimum.
	KindVersionTooOld

	// KindUpgradeFailed means the upgrade command exited with a non-zero code.
	KindUpgradeFailed
)

// String returns the kind name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindInvalidExecutable:
		return "InvalidExecutable"
	case KindVersionTooOld:
		return "VersionTooOld"
	case KindUpgradeFailed:
		return "UpgradeFailed"
	default:
		return "None"
	}
}

// UpgradeError is implemented by every error that is fatal for a single
// target but must not abort the remaining targets.
type UpgradeError interface {
	error

	// Kind returns the error category.
	Kind() Kind

	// TargetName returns the executable reference the error belongs to.
	TargetName() string
}

// InvalidExecutableError indicates the target could not be found, could not be
// started, exited non-zero on a query, or produced output that is not pip output.
//
// Fields:
//   - Target: The executable reference as given by the user
//   - Err: Underlying cause, may be nil
type InvalidExecutableError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *InvalidExecutableError) Error() string {
	return fmt.Sprintf("'%s' is not a valid pip executable", e.Target)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *InvalidExecutableError) Unwrap() error {
	return e.Err
}

// Kind implements UpgradeError.
func (e *InvalidExecutableError) Kind() Kind { return KindInvalidExecutable }

// TargetName implements UpgradeError.
func (e *InvalidExecutableError) TargetName() string { return e.Target }

// VersionTooOldError indicates the target reported a major version below Minimum.
//
// Fields:
//   - Target: The executable reference
//   - Version: The raw version string the executable reported
//   - Minimum: The minimum accepted major version
type VersionTooOldError struct {
	Target  string
	Version string
	Minimum int
}

// Error implements the error interface.
func (e *VersionTooOldError) Error() string {
	return fmt.Sprintf("'%s' version is %s; at least %d is required", e.Target, e.Version, e.Minimum)
}

// Kind implements UpgradeError.
func (e *VersionTooOldError) Kind() Kind { return KindVersionTooOld }

// TargetName implements UpgradeError.
func (e *VersionTooOldError) TargetName() string { return e.Target }

// UpgradeFailedError indicates the upgrade command exited with a non-zero code.
//
// Fields:
//   - Target: The executable reference
//   - Code: Exit code of the upgrade process (-1 if it was killed by a signal)
type UpgradeFailedError struct {
	Target string
	Code   int
}

// Error implements the error interface.
func (e *UpgradeFailedError) Error() string {
	return fmt.Sprintf("Upgrade failed with code %d. Please upgrade manually, or fix the problem.", e.Code)
}

// Kind implements UpgradeError.
func (e *UpgradeFailedError) Kind() Kind { return KindUpgradeFailed }

// TargetName implements UpgradeError.
func (e *UpgradeFailedError) TargetName() string { return e.Target }

// NewInvalidExecutableError creates an InvalidExecutableError.
//
// Parameters:
//   - target: The executable reference
//   - err: Underlying cause, may be nil
//
// Returns:
//   - *InvalidExecutableError: New error
func NewInvalidExecutableError(target string, err error) *InvalidExecutableError {
	return &InvalidExecutableError{Target: target, Err: err}
}

// NewVersionTooOldError creates a VersionTooOldError.
func NewVersionTooOldError(target, version string, minimum int) *VersionTooOldError {
	return &VersionTooOldError{Target: target, Version: version, Minimum: minimum}
}

// NewUpgradeFailedError creates an UpgradeFailedError.
func NewUpgradeFailedError(target string, code int) *UpgradeFailedError {
	return &UpgradeFailedError{Target: target, Code: code}
}

// IsUpgradeError checks if err belongs to the upgrade error category and returns it.
//
// Parameters:
//   - err: The error to check, may be wrapped
//
// Returns:
//   - UpgradeError: The matching error, nil otherwise
//   - bool: true if err is an UpgradeError
//
// Example:
//
//	if ue, ok := errors.IsUpgradeError(err); ok {
//	    fmt.Fprintln(os.Stderr, ue.Error())
//	}
func IsUpgradeError(err error) (UpgradeError, bool) {
	var ue UpgradeError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindNone if err is not an UpgradeError.
func KindOf(err error) Kind {
	if ue, ok := IsUpgradeError(err); ok {
		return ue.Kind()
	}
	return KindNone
}

// IsUpgradeFailed checks if err is an UpgradeFailedError and returns it.
func IsUpgradeFailed(err error) (*UpgradeFailedError, bool) {
	var ufe *UpgradeFailedError
	if errors.As(err, &ufe) {
		return ufe, true
	}
	return nil, false
}

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (ExitFailure or ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error, may be nil
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise the underlying error's
// message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
