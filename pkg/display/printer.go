package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ajxudir/pipupgrade/pkg/constants"
	"github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// Printer writes progress lines to Out and error lines to Err.
//
// Fields:
//   - Out: Destination for progress messages and the upgrade child's stdout
//   - Err: Destination for error messages and the upgrade child's stderr
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter creates a Printer. Nil writers discard their output.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Printer{Out: out, Err: errOut}
}

// Header announces the start of a target.
func (p *Printer) Header(target string) {
	p.line(fmt.Sprintf(MsgHeaderFmt, target))
}

// Count prints how many packages are outdated.
func (p *Printer) Count(n int) {
	p.line(fmt.Sprintf(MsgCountFmt, n))
}

// Packages prints the outdated package names in listing order.
func (p *Printer) Packages(names []string) {
	p.line(fmt.Sprintf(MsgPackagesFmt, strings.Join(names, ", ")))
}

// Upgrading announces that the upgrade command is about to run.
func (p *Printer) Upgrading() {
	p.line(MsgUpgrading)
}

// Success reports a successful upgrade.
func (p *Printer) Success() {
	_, _ = fmt.Fprintln(p.Out, color.GreenString(MsgSuccess))
}

// DryRun reports that the upgrade was skipped.
func (p *Printer) DryRun() {
	_, _ = fmt.Fprintln(p.Out, color.YellowString(MsgDryRun))
}

// Error prints the message of err on its own line of the error stream.
//
// When verbose logging is enabled, a hint line follows for upgrade errors.
//
// Parameters:
//   - err: The error to report; nil prints nothing
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(p.Err, color.RedString("%s", err.Error()))
	if !verbose.IsEnabled() {
		return
	}
	if hint := errors.GetHint(err); hint != "" {
		_, _ = fmt.Fprintf(p.Err, MsgHintFmt+"\n", constants.IconLightbulb, hint)
	}
}

func (p *Printer) line(msg string) {
	_, _ = fmt.Fprintln(p.Out, msg)
}
