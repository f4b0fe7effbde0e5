package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"dlc-checker/core/loader"
	"dlc-checker/core/logger"
	"dlc-checker/core/middleware/auth"
	"dlc-checker/core/middleware/rayid"
	"dlc-checker/feature/dlc"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve check reports over HTTP",
	Long:  `Starts the HTTP server exposing the DLC report, the DLC list and a refresh endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.log.Sync()
		zap.ReplaceGlobals(a.log)
		logg := a.log

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		ttl := time.Duration(a.cfg.Server.ReportTTLSeconds) * time.Second
		mgr := loader.NewManager(logg)
		mgr.Register(dlc.NewFeature(a.service().WithReportTTL(ttl)))

		// RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if a.cfg.Server.HasAuth() {
			app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not set, requests are not authenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(":" + a.cfg.Server.Port)
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case err := <-errCh:
			return err
		case <-sig:
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
