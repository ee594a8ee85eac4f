package cmd

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlq-sim/mlq-sim/api"
)

var serveAddr string

// serveCmd exposes the simulator over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Long:  "Start an HTTP server exposing POST /api/v1/mlq: it accepts a JSON process set and returns the computed per-process metrics and run-wide averages.",
	Run: func(cmd *cobra.Command, args []string) {
		app := fiber.New()
		api.Register(app)

		logrus.Infof("Listening on %s", serveAddr)
		if err := app.Listen(serveAddr); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9095", "Listen address")

	rootCmd.AddCommand(serveCmd)
}
