package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/command"
	"github.com/sandevgo/auralis/internal/transport/tui"
	"github.com/sandevgo/auralis/pkg/conv"
	"github.com/sandevgo/auralis/pkg/log"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// The window owns the terminal, logs go to the runtime log file
		f, err := openLogFile()
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, f)
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		session := a.newSession("tui", chat.WithGreeting(chat.Greeting))
		err = tui.Run(ctx, session, a.router)

		// Let pending memory writes finish
		if serr := a.writer.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			log.FromCtx(ctx).Warn().Err(serr).Msg("memory writes did not finish")
		}
		return err
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send one message and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		session := a.newSession("cli")
		msg, err := session.Submit(ctx, strings.Join(args, " "))
		a.writer.Wait()
		if err != nil {
			return err
		}
		if msg.Sender == core.SenderSystem {
			return errors.New(msg.Text)
		}

		out := cmd.OutOrStdout()
		text, err := conv.MarkdownToText(msg.Text)
		if err != nil {
			text = msg.Text
		}
		fmt.Fprintln(out, text)
		if msg.Thoughts != nil {
			thoughts, _ := conv.MarkdownToText(command.FormatThoughts(*msg.Thoughts))
			fmt.Fprintln(out)
			fmt.Fprintln(out, thoughts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
}
