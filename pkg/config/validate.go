package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message string.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate checks cfg for values that would produce broken command lines.
//
// It verifies:
//   - targets, install_args and exclude contain no blank entries
//   - env keys are non-empty and contain no "="
//
// Parameters:
//   - cfg: configuration to check
//
// Returns:
//   - error: all ValidationErrors joined, or nil
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, blankEntries("targets", cfg.Targets)...)
	errs = append(errs, blankEntries("install_args", cfg.InstallArgs)...)
	errs = append(errs, blankEntries("exclude", cfg.Exclude)...)

	for key := range cfg.Env {
		if strings.TrimSpace(key) == "" || strings.Contains(key, "=") {
			errs = append(errs, ValidationError{Field: "env", Message: fmt.Sprintf("invalid variable name %q", key)})
		}
	}

	return errors.Join(errs...)
}

func blankEntries(field string, values []string) []error {
	var errs []error
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "must not be empty"})
		}
	}
	return errs
}
