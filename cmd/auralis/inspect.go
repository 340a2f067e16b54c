package main

import (
	"context"
	"fmt"

	"github.com/sandevgo/auralis/pkg/conv"
	"github.com/sandevgo/auralis/pkg/log"
	"github.com/spf13/cobra"
)

// runRouted executes a slash command through the shared router and prints
// its Markdown output as plain text.
func runRouted(cmd *cobra.Command, input string) error {
	ctx, flushLog := setupLogger(cmd.Context())
	defer flushLog()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	out, _ := a.router.Execute(ctx, "cli", input)
	return printMarkdown(ctx, cmd, out)
}

func printMarkdown(ctx context.Context, cmd *cobra.Command, md string) error {
	text, err := conv.MarkdownToText(md)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("markdown conversion failed, printing raw")
		text = md
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show identity, values, recent memories, self-concept and daily ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRouted(cmd, "/profile")
	},
}

var memoriesCmd = &cobra.Command{
	Use:   "memories",
	Short: "Show memory segments by horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRouted(cmd, "/memories")
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models [filter]",
	Short: "List models available from the configured provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "/model list"
		if len(args) == 1 {
			input += " " + args[0]
		}
		return runRouted(cmd, input)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(memoriesCmd)
	rootCmd.AddCommand(modelsCmd)
}
