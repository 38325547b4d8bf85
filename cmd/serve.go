package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/linkvet/linkvet/internal/logging"
	"github.com/linkvet/linkvet/internal/server"
)

var listenFlag string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the URL analysis HTTP service",
	Long: `Serve starts the HTTP service exposing GET /analyze?url=<string>.

The remote blacklist feed is fetched once before the listener starts; a
failed fetch is logged and degrades remote coverage until restart. The
local filters file is re-read on every request.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenFlag, "listen", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.Init(viper.GetString("log_level"), viper.GetString("log_format"))

	a := buildAnalyzer(cmd.Context(), logger)
	srv := server.New(a, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down")

		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	addr := listenFlag
	if addr == "" {
		addr = viper.GetString("listen")
	}

	return srv.Listen(addr)
}
