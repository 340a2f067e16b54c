package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/command"
	"github.com/sandevgo/auralis/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot      *tele.Bot
	sessions *chat.Registry
	router   core.CmdRouter
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg config.TelegramConfig,
	sessions *chat.Registry,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("telegram handler failed")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		sessions: sessions,
		router:   router,
		sender:   newSender(b),
		ownerID:  cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram-%d", chatID)
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	return b.sender.sendMarkdown(ctx, c.Recipient(), chat.Greeting, false)
}

func (b *Bot) handleMessage(c tele.Context) error {
	id := sessionID(c.Chat().ID)
	ctx := log.WithFields(c.Get(baseContextKey).(context.Context), map[string]any{
		"transport": "telegram",
		"sender":    c.Sender().ID,
	})
	logger := log.FromCtx(ctx)

	if out, ok := b.router.Execute(ctx, id, c.Text()); ok {
		return b.sender.sendMarkdown(ctx, c.Recipient(), out, true)
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	session := b.sessions.Get(id)
	msg, err := session.Submit(ctx, c.Text())
	switch {
	case errors.Is(err, chat.ErrBusy):
		return c.Send("⏳ Ainda estou pensando na mensagem anterior.")
	case err != nil:
		logger.Debug().Err(err).Msg("message rejected")
		return nil
	}

	if msg.Sender == core.SenderSystem {
		return c.Send(msg.Text)
	}

	if err := b.sender.sendMarkdown(ctx, c.Recipient(), msg.Text, false); err != nil {
		return err
	}
	if msg.Thoughts != nil {
		return b.sender.sendMarkdown(ctx, c.Recipient(), command.FormatThoughts(*msg.Thoughts), true)
	}
	return nil
}
