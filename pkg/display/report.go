package display

import (
	"fmt"
	"io"

	"github.com/ajxudir/pipupgrade/pkg/constants"
	"github.com/ajxudir/pipupgrade/pkg/output"
	"github.com/ajxudir/pipupgrade/pkg/pip"
)

// Outdated report column headers.
const (
	ColName      = "NAME"
	ColInstalled = "INSTALLED"
	ColLatest    = "LATEST"
	ColType      = "TYPE"
	ColBump      = "BUMP"
	ColStatus    = "STATUS"
)

// OutdatedTable builds the outdated report table for one target.
//
// Parameters:
//   - packages: Rows from pip.ParseOutdated
//   - excluded: Reports whether a package name is excluded by config; may be nil
//
// Returns:
//   - *output.Table: Table with one row per package, in listing order
func OutdatedTable(packages []pip.OutdatedPackage, excluded func(string) bool) *output.Table {
	tbl := output.NewTable(ColName, ColInstalled, ColLatest, ColType, ColBump, ColStatus)
	for _, p := range packages {
		status := constants.StatusOutdated
		if excluded != nil && excluded(p.Name) {
			status = constants.StatusExcluded
		}
		tbl.AddRow(
			p.Name,
			orNA(p.Installed),
			orNA(p.Latest),
			orNA(p.Type),
			orNA(p.Bump()),
			FormatStatus(status),
		)
	}
	return tbl
}

// PrintOutdatedReport writes the report header and table for one target.
//
// Parameters:
//   - w: Destination writer
//   - target: Executable reference shown in the header
//   - packages: Rows from pip.ParseOutdated
//   - excluded: Reports whether a package name is excluded by config; may be nil
//
// Returns:
//   - error: The first write error, if any
func PrintOutdatedReport(w io.Writer, target string, packages []pip.OutdatedPackage, excluded func(string) bool) error {
	if _, err := fmt.Fprintf(w, MsgReportHeaderFmt+"\n", target); err != nil {
		return err
	}
	if len(packages) == 0 {
		_, err := fmt.Fprintln(w, MsgNothingOutdated)
		return err
	}
	return OutdatedTable(packages, excluded).Render(w)
}

// FormatStatus prefixes a status with its icon, e.g. "🟠 Outdated".
func FormatStatus(status string) string {
	if icon := constants.StatusIcon(status); icon != "" {
		return icon + " " + status
	}
	return status
}

func orNA(val string) string {
	if val == "" {
		return constants.PlaceholderNA
	}
	return val
}
