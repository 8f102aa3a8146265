package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/schedsim/sim/server"
)

var listenAddr string // HTTP listen address

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Long:  "Serve exposes POST /api/v1/simulate, GET /api/v1/schedulers and GET /healthz. Stops on SIGINT or SIGTERM.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		setupLogging(cfg.LogLevel)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.WithLogger(logrus.StandardLogger()))
		if err := srv.ListenAndServe(ctx, cfg.Listen); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}
