package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/command"
	"github.com/sandevgo/auralis/internal/service/profile"
	"github.com/sandevgo/auralis/pkg/log"
)

const defaultSessionID = "mcp"

type ProfileSource interface {
	Load(ctx context.Context) (profile.Profile, error)
	Segments(ctx context.Context) (profile.Segments, error)
}

type tools struct {
	sessions *chat.Registry
	profiles ProfileSource
}

func chatTool() mcp.Tool {
	return mcp.NewTool("auralis_chat",
		mcp.WithDescription("Send a message to Auralis and get her reply with reflection, emotion and importance."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The user message."),
		),
		mcp.WithString("session_id",
			mcp.Description("Conversation to continue. Defaults to a shared MCP session."),
		),
	)
}

func profileTool() mcp.Tool {
	return mcp.NewTool("auralis_profile",
		mcp.WithDescription("Show Auralis identity, values, recent memories, self-concept and latest daily ideas."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func segmentsTool() mcp.Tool {
	return mcp.NewTool("auralis_memory_segments",
		mcp.WithDescription("Show Auralis memory segments grouped by short, medium and long term."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *tools) chat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id := req.GetString("session_id", defaultSessionID)

	ctx = log.WithFields(ctx, map[string]any{"transport": "mcp"})
	msg, err := t.sessions.Get(id).Submit(ctx, message)
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		return mcp.NewToolResultError("message must not be empty"), nil
	case errors.Is(err, chat.ErrBusy):
		return mcp.NewToolResultError("a response is already being generated for this session"), nil
	case err != nil:
		return nil, err
	}

	if msg.Sender == core.SenderSystem {
		return mcp.NewToolResultError(msg.Text), nil
	}

	text := msg.Text
	if msg.Thoughts != nil {
		text += "\n\n" + command.FormatThoughts(*msg.Thoughts)
	}
	return mcp.NewToolResultText(text), nil
}

func (t *tools) profile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := t.profiles.Load(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("profile loaded partially")
	}
	return mcp.NewToolResultText(command.FormatProfile(p)), nil
}

func (t *tools) segments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.profiles.Segments(ctx)
	if err != nil {
		return mcp.NewToolResultError("failed to load memory segments: " + err.Error()), nil
	}
	return mcp.NewToolResultText(command.FormatSegments(s)), nil
}
