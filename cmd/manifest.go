package cmd

import (
	"errors"
	"fmt"
	"os"

	"dlc-checker/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// manifestCmd groups DLC list maintenance commands.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Manage the DLC list",
}

var manifestUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download the DLC list and refresh the local copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		content, err := a.source.Update(cmd.Context())
		if err != nil {
			return err
		}

		a.log.Info("Manifest updated",
			zap.String("origin", string(content.Origin)),
			zap.String("path", a.source.Cache().Path()),
			zap.Int("bytes", len(content.Data)))
		return nil
	},
}

var manifestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the DLC list as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		m, content, err := a.service().Manifest(cmd.Context())
		if err != nil {
			return err
		}

		p := report.NewPrinter(os.Stdout, a.cfg.Console.Color)
		if jsonFlag {
			return p.JSON(m.Entries())
		}

		p.Info("Version %s from %s", m.Version(), content.Origin)
		rows := make([][]string, 0, m.Len())
		for _, e := range m.Entries() {
			rows = append(rows, []string{e.ID, e.Name})
		}
		p.Table([]string{"Identifier", "Name"}, rows)
		return nil
	},
}

var manifestPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the local DLC list to the mirror bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		if a.mirror == nil {
			return errors.New("mirror is not configured, set storage.enabled")
		}

		data, err := a.source.Cache().Read()
		if err != nil {
			return err
		}

		if err := a.mirror.Publish(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to publish manifest: %w", err)
		}

		a.log.Info("Manifest published", zap.String("location", a.mirror.Location()), zap.Int("bytes", len(data)))
		return nil
	},
}

func init() {
	manifestShowCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print entries as JSON")
	manifestCmd.AddCommand(manifestUpdateCmd, manifestShowCmd, manifestPublishCmd)
	RootCmd.AddCommand(manifestCmd)
}
