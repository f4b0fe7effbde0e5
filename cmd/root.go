package cmd

import (
	"errors"
	"fmt"
	"os"

	"dlc-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevelFlag    string
	installPathFlag string
	colorFlag       string
	noWaitFlag      bool
)

// RootCmd represents the base command when called without any subcommands.
// Run bare, it performs a check, which is what double-clicking the binary does.
var RootCmd = &cobra.Command{
	Use:   "dlc-checker",
	Short: "Check which COM3D2 DLC are installed",
	Long: `dlc-checker compares the published COM3D2 DLC list against the archives in
the game's GameData and GameData_20 directories and prints what is installed
and what is not.

The list is downloaded on every run and cached next to the executable, so
later runs work offline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, false, false)
	},
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			cfg := &logger.Config{
				Level:  "info",
				Format: "console",
			}

			l, logErr := logger.New(cfg)
			if logErr == nil {
				l.Error("command failed", zap.Error(err))
				_ = l.Sync()
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&installPathFlag, "install-path", "", "Game install directory, skips discovery")
	flags.StringVar(&colorFlag, "color", "", "Color output: auto, always, never")
	flags.BoolVar(&noWaitFlag, "no-wait", false, "Exit without waiting for Enter")
}
