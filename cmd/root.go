// Package cmd implements the command-line interface for pipupgrade.
// The root command upgrades every outdated package of each given pip
// executable; subcommands report outdated packages and print build information.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajxudir/pipupgrade/pkg/cmdexec"
	"github.com/ajxudir/pipupgrade/pkg/config"
	"github.com/ajxudir/pipupgrade/pkg/display"
	"github.com/ajxudir/pipupgrade/pkg/errors"
	"github.com/ajxudir/pipupgrade/pkg/pip"
	"github.com/ajxudir/pipupgrade/pkg/upgrade"
	"github.com/ajxudir/pipupgrade/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var configFlag string
var dryRunFlag bool
var noColorFlag bool

// newRunner builds the command runner for child processes. Tests replace it.
var newRunner = func(env map[string]string) cmdexec.Runner {
	return cmdexec.NewRunner(env)
}

var rootCmd = &cobra.Command{
	Use:   "pipupgrade [flags] [executable...]",
	Short: "Upgrade all outdated packages of one or more pip executables",
	Long: `Upgrade every outdated package of each pip executable given on the command line.

Each executable is checked for a supported pip version, asked for its outdated
packages, and told to upgrade them all in one install command. A failing
executable is reported and the next one is processed.

With no executables given, the targets listed in .pipupgrade.yml are used.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose.SetWriter(cmd.ErrOrStderr())
		if verboseFlag {
			verbose.Enable()
		}
		configureColor(cmd.OutOrStdout())
		if HasArchMismatch() {
			verbose.Printf("binary built for %s but running on a different platform", buildTargetString())
		}
	},
	RunE: runUpgrade,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success, including runs where every target failed
//   - 2: Interrupted, or invalid arguments
//   - 3: Configuration error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		stop()
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "List outdated packages without upgrading them")
	// Local, so it only works on the root command.
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(outdatedCmd)
}

// runUpgrade executes the root command.
//
// It performs the following operations:
//   - Step 1: Prints version information and stops if -v was given
//   - Step 2: Loads the configuration
//   - Step 3: Resolves targets from args or the config
//   - Step 4: Runs the upgrade pipeline for each target in order
//
// Target failures are printed and do not affect the exit code.
//
// Returns:
//   - error: ExitError for config problems or interruption; nil otherwise
func runUpgrade(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets := resolveTargets(args, cfg)
	if len(targets) == 0 {
		verbose.Info("No executables given and no targets configured, nothing to do")
		return nil
	}

	printer := display.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	client := pip.NewClient(newRunner(cfg.Env), cfg.InstallArgs)
	upgrader := upgrade.NewUpgrader(client, printer).
		WithConfig(cfg).
		WithDryRun(dryRunFlag)

	summary, err := upgrader.Run(cmd.Context(), targets)
	verbose.Printf("%d target(s): %d upgraded, %d up to date, %d planned, %d failed",
		len(summary.Results),
		summary.Count(upgrade.StateDone),
		summary.Count(upgrade.StateUpToDate),
		summary.Count(upgrade.StatePlanned),
		summary.Count(upgrade.StateFailed))
	return interrupted(err)
}

// loadConfig loads the config named by --config, or the one in the working directory.
//
// Returns:
//   - *config.Config: Loaded configuration; empty when no file exists
//   - error: ExitError with ExitConfigError on any load failure
func loadConfig() (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to determine working directory: %w", err))
	}
	cfg, err := config.LoadConfig(configFlag, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}
	return cfg, nil
}

// resolveTargets returns args when given, otherwise the configured targets.
func resolveTargets(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	if cfg == nil {
		return nil
	}
	return cfg.Targets
}

// interrupted maps a batch-stopping error to an exit error.
func interrupted(err error) error {
	if err == nil {
		return nil
	}
	if cmdexec.IsCanceled(err) {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("interrupted: %w", err))
	}
	return err
}

// configureColor enables colour only when out is a terminal and colour was not disabled.
func configureColor(out io.Writer) {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		return
	}
	f, ok := out.(*os.File)
	color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
}
