package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/providers/auralis"
	"github.com/sandevgo/auralis/internal/providers/llm"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/command"
	"github.com/sandevgo/auralis/internal/service/persona"
	"github.com/sandevgo/auralis/internal/service/profile"
	"github.com/sandevgo/auralis/internal/transport/httpapi"
	"github.com/sandevgo/auralis/internal/transport/mcpserver"
	"github.com/sandevgo/auralis/internal/transport/telegram"
	"github.com/sandevgo/auralis/pkg/log"
	"github.com/sandevgo/auralis/pkg/srv"
)

// app holds the components shared by every command.
type app struct {
	cfg       *config.AppConfig
	client    *auralis.Client
	provider  core.AIProvider
	profiles  *profile.Service
	responder *persona.Responder
	writer    *persona.MemoryWriter
	router    *command.Router
}

// newApp loads the runtime .env and the configuration and builds the
// generation pipeline.
func newApp(ctx context.Context) (*app, error) {
	logger := log.FromCtx(ctx)

	runtimePath := config.GetRuntimePath()
	loaded, err := config.LoadEnvFile(runtimePath)
	if err != nil {
		logger.Warn().Err(err).Str("path", config.GetEnvPath(runtimePath)).Msg("failed to load .env file")
	} else if loaded {
		logger.Debug().Str("path", config.GetEnvPath(runtimePath)).Msg("loaded .env file")
	}

	cfg := config.NewAppConfig(ctx)

	client := auralis.NewClient(
		cfg.Auralis.BaseURL,
		cfg.Auralis.Timeout,
		auralis.WithRecentMemories(cfg.Auralis.RecentMemories),
	)

	provider, err := llm.NewProvider(ctx, cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	profiles := profile.NewService(client)

	logger.Debug().
		Str("provider", cfg.Provider.Provider).
		Str("model", cfg.Provider.GetModel()).
		Str("auralis", cfg.Auralis.BaseURL).
		Msg("pipeline ready")

	return &app{
		cfg:       cfg,
		client:    client,
		provider:  provider,
		profiles:  profiles,
		responder: persona.NewResponder(client, persona.NewAssembler(cfg.Auralis.RecentMemories), provider),
		writer:    persona.NewMemoryWriter(client, cfg.Auralis.MemoryWriteTimeout),
		router:    command.NewDefaultRouter(cfg.Provider, provider, profiles),
	}, nil
}

func (a *app) newSession(id string, opts ...chat.Option) *chat.Session {
	return chat.NewSession(id, a.responder, a.writer, opts...)
}

func (a *app) newRegistry() *chat.Registry {
	return chat.NewRegistry(
		func(id string) *chat.Session { return a.newSession(id) },
		chat.WithMaxSessions(a.cfg.Sessions.Max),
		chat.WithIdleTTL(a.cfg.Sessions.IdleTTL),
	)
}

// initTransports builds the long-running surfaces enabled in the config.
func initTransports(ctx context.Context, a *app) ([]srv.Service, error) {
	var services []srv.Service
	sessions := a.newRegistry()

	// Telegram Bot
	if a.cfg.IsTelegramSelected() {
		bot, err := telegram.NewBot(ctx, a.cfg.Telegram, sessions, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// HTTP API
	if a.cfg.IsHTTPSelected() {
		services = append(services, httpapi.NewServer(ctx, a.cfg.HTTP, sessions, a.profiles))
	}

	return services, nil
}

func newMCPServer(a *app, in io.Reader, out io.Writer) *mcpserver.Server {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return mcpserver.NewServer(a.newRegistry(), a.profiles, in, out)
}

// openLogFile appends to the runtime log, used while the terminal is taken.
func openLogFile() (*os.File, error) {
	runtimePath := config.GetRuntimePath()
	if err := os.MkdirAll(runtimePath, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(config.GetLogPath(runtimePath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
