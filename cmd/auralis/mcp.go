package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/auralis/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve Auralis as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// stdout carries the protocol
		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		return srv.Run(ctx, []srv.Service{
			srv.NewCleanup(a.writer.Shutdown),
			newMCPServer(a, os.Stdin, os.Stdout),
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
