package cmd

import (
	"errors"
	"os"

	"dlc-checker/feature/dlc"
	"dlc-checker/feature/manifest"
	"dlc-checker/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	jsonFlag    bool
	detailsFlag bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List installed and missing DLC",
	Long: `Downloads the latest DLC list (falling back to the mirror and then the local
copy), finds the game installation and prints which DLC are installed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, jsonFlag, detailsFlag)
	},
}

func runCheck(cmd *cobra.Command, asJSON, details bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	rep, err := a.service().Check(cmd.Context())
	if asJSON {
		if err != nil {
			return err
		}
		return report.NewPrinter(os.Stdout, report.ColorNever).JSON(rep)
	}

	p := report.NewPrinter(os.Stdout, a.cfg.Console.Color)
	p.Banner()

	if err != nil {
		printFailure(p, a.log, err)
		a.wait()
		return &reportedError{err: err}
	}

	printOrigin(p, a, rep)
	p.Lists(rep.Installed, rep.NotInstalled)

	if details {
		p.Info("")
		p.Table([]string{"Identifier", "Name", "Status"}, detailRows(rep))
	}

	a.wait()
	return nil
}

// printFailure reports a failed check. When the list could be neither
// downloaded nor read locally, the offline notice comes first, as it would
// before falling back to the local copy.
func printFailure(p *report.Printer, log *zap.Logger, err error) {
	if !errors.Is(err, manifest.ErrManifestMissing) {
		p.Error("Check failed: %v", err)
		return
	}

	if errors.Is(err, manifest.ErrNoUpdate) {
		p.Warn("Can't connect to internet, offline file will be used")
	}
	log.Debug("Manifest unavailable", zap.Error(err))
	p.Error("%s", manifest.ErrManifestMissing.Error())
}

func printOrigin(p *report.Printer, a *app, rep *dlc.Report) {
	switch rep.Manifest.Origin {
	case manifest.OriginRemote:
		p.Info("Connected to %s", a.cfg.Manifest.URL)
	case manifest.OriginMirror:
		p.Warn("Can't connect to %s, using mirror %s", a.cfg.Manifest.URL, a.mirror.Location())
	default:
		p.Warn("Can't connect to internet, offline file will be used")
	}

	if rep.Manifest.Version != "" {
		p.Info("DLC list version %s, %d entries", rep.Manifest.Version, rep.Manifest.Entries)
	}
	if n := len(rep.Manifest.Skipped); n > 0 {
		p.Warn("%d malformed lines in the DLC list were ignored", n)
	}
	a.log.Debug("Using install root",
		zap.String("path", rep.InstallRoot.Path),
		zap.String("via", rep.InstallRoot.Via))
}

func detailRows(rep *dlc.Report) [][]string {
	rows := make([][]string, 0, len(rep.Details))
	for _, d := range rep.Details {
		status := "missing"
		if d.Present {
			status = "installed"
		}
		if d.Aliased {
			status += " (shared name)"
		}
		rows = append(rows, []string{d.ID, d.Name, status})
	}
	return rows
}

func (a *app) wait() {
	if !report.ShouldWait(a.cfg.Console, os.Stdin) {
		return
	}
	if err := report.WaitForEnter(os.Stdin, os.Stdout); err != nil {
		a.log.Debug("Failed to read from stdin", zap.Error(err))
	}
}

func init() {
	checkCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the report as JSON")
	checkCmd.Flags().BoolVar(&detailsFlag, "details", false, "Print a per-entry table")
	RootCmd.AddCommand(checkCmd)
}
