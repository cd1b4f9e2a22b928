package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/pipupgrade/pkg/display"
	"github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/pip"
)

var outdatedCmd = &cobra.Command{
	Use:   "outdated [executable...]",
	Short: "Show outdated packages without upgrading",
	Long: `Show the outdated packages of each pip executable as a table.

Packages listed under exclude in the config are marked Excluded.
Nothing is installed.`,
	Args: cobra.ArbitraryArgs,
	RunE: runOutdated,
}

// runOutdated prints an outdated report for each target.
//
// Version and listing failures are printed and the next target is processed.
//
// Returns:
//   - error: ExitError for config problems or interruption; nil otherwise
func runOutdated(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets := resolveTargets(args, cfg)
	printer := display.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	client := pip.NewClient(newRunner(cfg.Env), cfg.InstallArgs)
	ctx := cmd.Context()

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return interrupted(err)
		}
		packages, err := outdatedPackages(cmd, client, target)
		if err != nil {
			if _, ok := errors.IsUpgradeError(err); ok {
				printer.Error(err)
				continue
			}
			return interrupted(err)
		}
		if err := display.PrintOutdatedReport(printer.Out, target, packages, cfg.IsExcluded); err != nil {
			return err
		}
	}
	return nil
}

func outdatedPackages(cmd *cobra.Command, client *pip.Client, target string) ([]pip.OutdatedPackage, error) {
	if _, err := client.CheckVersion(cmd.Context(), target); err != nil {
		return nil, err
	}
	return client.ListOutdatedPackages(cmd.Context(), target)
}
