package pip

import (
	"context"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	"github.com/ajxudir/pipupgrade/pkg/errors"
)

// HeaderLines is the number of leading lines of `list --outdated` output that
// are skipped unconditionally. pip >= 9 prints a column title line and a dashed
// rule; the content of those lines is not inspected.
const HeaderLines = 2

// OutdatedPackage is one row of `pip list --outdated`.
//
// Fields:
//   - Name: First column, the package name
//   - Installed: Second column, the installed version (may be empty)
//   - Latest: Third column, the newest available version (may be empty)
//   - Type: Fourth column, the distribution type such as "wheel" (may be empty)
type OutdatedPackage struct {
	Name      string
	Installed string
	Latest    string
	Type      string
}

// Bump classifies the available update as "major", "minor" or "patch".
//
// Returns:
//   - string: Update class; empty when either version is missing or not semver-like
func (p OutdatedPackage) Bump() string {
	installed := canonicalSemver(p.Installed)
	latest := canonicalSemver(p.Latest)
	if installed == "" || latest == "" {
		return ""
	}

	switch {
	case semver.Major(installed) != semver.Major(latest):
		return "major"
	case semver.MajorMinor(installed) != semver.MajorMinor(latest):
		return "minor"
	default:
		return "patch"
	}
}

// ParseOutdated parses the tabular output of `<exe> list --outdated`.
//
// The first HeaderLines lines are dropped. Every remaining line is trimmed;
// blank lines are skipped and the first whitespace-delimited token becomes the
// package name. Order of appearance is kept and duplicates are not removed.
//
// Parameters:
//   - output: Decoded stdout of the listing
//
// Returns:
//   - []OutdatedPackage: Parsed rows, empty when nothing is outdated
func ParseOutdated(output string) []OutdatedPackage {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.ReplaceAll(output, "\r", "\n")
	lines := strings.Split(output, "\n")
	if len(lines) <= HeaderLines {
		return nil
	}

	var packages []OutdatedPackage
	for _, line := range lines[HeaderLines:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		packages = append(packages, OutdatedPackage{
			Name:      fields[0],
			Installed: field(fields, 1),
			Latest:    field(fields, 2),
			Type:      field(fields, 3),
		})
	}
	return packages
}

// Names returns the package names of packages in order.
func Names(packages []OutdatedPackage) []string {
	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	return names
}

// ListOutdatedPackages runs `<target> list --outdated` and parses every column.
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: Executable reference
//
// Returns:
//   - []OutdatedPackage: Outdated packages in listing order
//   - error: InvalidExecutableError on failure, or a cancellation error
func (c *Client) ListOutdatedPackages(ctx context.Context, target string) ([]OutdatedPackage, error) {
	out, err := c.Runner.Output(ctx, target, "list", "--outdated")
	if err != nil {
		if cmdexec.IsCanceled(err) {
			return nil, err
		}
		return nil, errors.NewInvalidExecutableError(target, err)
	}
	return ParseOutdated(string(out)), nil
}

// ListOutdated runs `<target> list --outdated` and returns the package names.
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: Executable reference
//
// Returns:
//   - []string: Package names in listing order, duplicates kept
//   - error: InvalidExecutableError on failure, or a cancellation error
func (c *Client) ListOutdated(ctx context.Context, target string) ([]string, error) {
	packages, err := c.ListOutdatedPackages(ctx, target)
	if err != nil {
		return nil, err
	}
	return Names(packages), nil
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
