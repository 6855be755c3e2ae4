package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-notify/internal/service/server"
)

// serveCmd runs the local HTTP invoke endpoint.
var serveCmd = &cobra.Command{
	Use:   "serve [listen-address]",
	Short: "Serve the handler over HTTP for local testing.",
	Long: `Starts an HTTP server that accepts SNS events on POST /invoke and runs the
Lambda handler for each of them. GET /healthz reports liveness.
The listen address defaults to ` + server.DefaultListenAddress + ` (e.g., :9090, 127.0.0.1:8080).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		var listenAddress string
		if len(args) > 0 {
			listenAddress = args[0]
		}

		return server.Run(ctx, &server.Options{
			ConfigPath:    configPath,
			ListenAddress: listenAddress,
		})
	},
}
