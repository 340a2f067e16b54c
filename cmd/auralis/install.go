package main

import (
	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/service/installer"
	"github.com/sandevgo/auralis/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Configure Auralis interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		// run wizard (includes save step)
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		// Check what was written parses and validates
		if _, err := config.LoadEnvFile(runtimePath); err != nil {
			logger.Warn().Err(err).Msg("failed to load the new .env file")
		} else if cfg, err := config.Load(); err != nil {
			logger.Warn().Err(err).Msg("saved configuration does not parse")
		} else if err := cfg.Validate(); err != nil {
			logger.Warn().Err(err).Msg("saved configuration is incomplete")
		}

		logger.Info().Str("path", config.GetEnvPath(runtimePath)).Msg("configuration saved")
		logger.Info().Msg("Installation complete! Run 'auralis chat' or 'auralis start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
