package pip

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	"github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// MinVersion is the lowest supported pip major version.
// Older releases print `list --outdated` in a format without the two-line header.
const MinVersion = 9

// Version is the version an executable reports about itself.
//
// Fields:
//   - Raw: Second whitespace-delimited token of the --version output
//   - Major: Integer before the first "." of Raw
//   - Canonical: Semver form of Raw (e.g. "v23.1.0"); empty when Raw is not semver-like
type Version struct {
	Raw       string
	Major     int
	Canonical string
}

// String returns the raw version string.
func (v Version) String() string {
	return v.Raw
}

// ParseVersion parses the output of `<exe> --version`.
//
// pip prints "pip 23.1.2 from /path/to/site-packages/pip (python 3.11)"; the
// version is the second token and only its major component is interpreted.
//
// Parameters:
//   - output: Decoded stdout of the version query
//
// Returns:
//   - Version: Parsed version
//   - error: If there is no second token or its major component is not an integer
func ParseVersion(output string) (Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return Version{}, fmt.Errorf("unexpected version output %q", strings.TrimSpace(output))
	}

	raw := fields[1]
	majorPart, _, _ := strings.Cut(raw, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q: %w", raw, err)
	}

	return Version{
		Raw:       raw,
		Major:     major,
		Canonical: canonicalSemver(raw),
	}, nil
}

// CheckVersion runs `<target> --version` and enforces MinVersion.
//
// It performs the following operations:
//   - Step 1: Runs the version query with stderr discarded
//   - Step 2: Parses the reported version
//   - Step 3: Compares the major component against MinVersion
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: Executable reference
//
// Returns:
//   - Version: The reported version, also on VersionTooOldError
//   - error: InvalidExecutableError, VersionTooOldError, or a cancellation error
func (c *Client) CheckVersion(ctx context.Context, target string) (Version, error) {
	out, err := c.Runner.Output(ctx, target, "--version")
	if err != nil {
		if cmdexec.IsCanceled(err) {
			return Version{}, err
		}
		return Version{}, errors.NewInvalidExecutableError(target, err)
	}

	v, err := ParseVersion(string(out))
	if err != nil {
		return Version{}, errors.NewInvalidExecutableError(target, err)
	}
	verbose.Infof("%s reports version %s (major %d, canonical %q)", target, v.Raw, v.Major, v.Canonical)

	if v.Major < MinVersion {
		return v, errors.NewVersionTooOldError(target, v.Raw, MinVersion)
	}
	return v, nil
}

// canonicalSemver converts a version string to canonical semver format.
//
// It performs the following operations:
//   - Adds "v" prefix if missing
//   - Pads missing minor/patch with zeros until valid semver is found
//   - Returns canonical form using semver.Canonical
//
// Parameters:
//   - version: The version string to canonicalize (e.g., "23.1", "v1.2.3")
//
// Returns:
//   - string: Canonical semver string (e.g., "v23.1.0"); empty string if not valid semver
func canonicalSemver(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	parts := strings.Split(strings.TrimPrefix(cleaned, "v"), ".")
	for len(parts) > 0 && len(parts) < 3 {
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
		parts = append(parts, "0")
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}
