package upgrade

import (
	"context"

	"github.com/ajxudir/pipupgrade/pkg/config"
	"github.com/ajxudir/pipupgrade/pkg/display"
	"github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/pip"
	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

// Upgrader upgrades every outdated package of a sequence of executables.
//
// Fields:
//   - Client: Runs the pip queries
//   - Printer: Receives progress and error lines; the upgrade child writes to
//     the same streams
//   - Config: Supplies the exclude list; may be nil
//   - DryRun: Stop after listing and record targets as Planned
type Upgrader struct {
	Client  *pip.Client
	Printer *display.Printer
	Config  *config.Config
	DryRun  bool
}

// NewUpgrader creates an Upgrader with no exclusions.
func NewUpgrader(client *pip.Client, printer *display.Printer) *Upgrader {
	return &Upgrader{Client: client, Printer: printer}
}

// WithConfig sets the configuration and returns the upgrader for chaining.
func (u *Upgrader) WithConfig(cfg *config.Config) *Upgrader {
	u.Config = cfg
	return u
}

// WithDryRun sets dry-run mode and returns the upgrader for chaining.
func (u *Upgrader) WithDryRun(dryRun bool) *Upgrader {
	u.DryRun = dryRun
	return u
}

// UpgradeAll runs the full pipeline for one target.
//
// It performs the following operations:
//   - Step 1: Prints the header line
//   - Step 2: Checks the executable's version
//   - Step 3: Lists outdated packages and drops excluded ones
//   - Step 4: Prints the count, and the names when there are any
//   - Step 5: Runs the upgrade unless nothing is outdated or DryRun is set
//
// Parameters:
//   - ctx: Context for cancellation
//   - target: Executable reference
//
// Returns:
//   - Result: Final state of the target, also populated on error
//   - error: The stage error; an UpgradeError or a cancellation error
func (u *Upgrader) UpgradeAll(ctx context.Context, target string) (Result, error) {
	res := Result{Target: target, State: StateCheckingVersion}
	u.Printer.Header(target)

	v, err := u.Client.CheckVersion(ctx, target)
	res.Version = v
	if err != nil {
		res.fail(err)
		return res, err
	}

	res.State = StateListingOutdated
	names, err := u.Client.ListOutdated(ctx, target)
	if err != nil {
		res.fail(err)
		return res, err
	}
	res.Packages, res.Excluded = u.filterExcluded(target, names)

	u.Printer.Count(len(res.Packages))
	if len(res.Packages) == 0 {
		res.State = StateUpToDate
		return res, nil
	}
	u.Printer.Packages(res.Packages)

	if u.DryRun {
		u.Printer.DryRun()
		res.State = StatePlanned
		return res, nil
	}

	res.State = StateUpgrading
	u.Printer.Upgrading()
	if err := u.Client.Upgrade(ctx, target, res.Packages, u.Printer.Out, u.Printer.Err); err != nil {
		res.fail(err)
		return res, err
	}
	u.Printer.Success()
	res.State = StateDone
	return res, nil
}

// Run processes targets in order, one at a time.
//
// Upgrade errors are printed to the error stream and processing continues
// with the next target. Any other error, such as cancellation, stops the
// batch; targets not yet started are left out of the summary.
//
// Parameters:
//   - ctx: Context for cancellation
//   - targets: Executable references in processing order
//
// Returns:
//   - Summary: One result per processed target
//   - error: nil unless the batch was stopped early
func (u *Upgrader) Run(ctx context.Context, targets []string) (Summary, error) {
	var summary Summary
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := u.UpgradeAll(ctx, target)
		summary.Results = append(summary.Results, res)
		verbose.Printf("%s finished in state %s", target, res.State)
		if err == nil {
			continue
		}
		if _, ok := errors.IsUpgradeError(err); !ok {
			return summary, err
		}
		if res.FailedAt != "" {
			verbose.Printf("%s failed while %s: %s", target, res.FailedAt, errors.KindOf(err))
		}
		u.Printer.Error(err)
	}
	return summary, nil
}

// filterExcluded splits names into those to upgrade and those excluded by config.
func (u *Upgrader) filterExcluded(target string, names []string) (kept, excluded []string) {
	if u.Config == nil || len(u.Config.Exclude) == 0 {
		return names, nil
	}
	kept = make([]string, 0, len(names))
	for _, name := range names {
		if u.Config.IsExcluded(name) {
			verbose.PackageExcluded(target, name)
			excluded = append(excluded, name)
			continue
		}
		kept = append(kept, name)
	}
	return kept, excluded
}
