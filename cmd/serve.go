package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/api"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Long: `Starts an HTTP API exposing the scheduling engine as JSON endpoints:

  POST /api/v1/schedule/:algorithm   run one algorithm over a task list
  POST /api/v1/compare               run all four algorithms

Responses carry the schedule (idle intervals included), per-task and
aggregate metrics, and the clinical risk flags.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 9095, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	app := api.NewApp()
	return app.Listen(fmt.Sprintf(":%d", servePort))
}
