package main

import (
	"fmt"

	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/pkg/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration with secrets masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadEnvFile(config.GetRuntimePath()); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		out, err := env.MarshalEnvMasked(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "\ninvalid: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
