package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/auralis/pkg/log"
	"github.com/sandevgo/auralis/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Auralis services",
	Long:  `Starts the configured long-running surfaces (Telegram, HTTP API) until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting auralis")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		services, err := initTransports(ctx, a)
		if err != nil {
			return err
		}
		if len(services) == 0 {
			return errors.New("no service enabled: set ENABLE_TELEGRAM or ENABLE_HTTP, or use 'auralis chat'")
		}

		// Pending memory writes are flushed last
		services = append([]srv.Service{srv.NewCleanup(a.writer.Shutdown)}, services...)

		if err := srv.Run(ctx, services); err != nil {
			return err
		}
		logger.Info().Msg("auralis has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
