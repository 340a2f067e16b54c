package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/pkg/log"
)

const instructions = `Auralis is a conversational persona with a remote identity and memory.
Use auralis_chat to talk to her; every turn is remembered as an episodic memory.
Use auralis_profile and auralis_memory_segments to inspect what she knows about herself.`

// Server exposes Auralis as MCP tools over stdio.
type Server struct {
	mcp *server.MCPServer
	in  io.Reader
	out io.Writer
}

func NewServer(sessions *chat.Registry, profiles ProfileSource, in io.Reader, out io.Writer) *Server {
	s := server.NewMCPServer(
		"auralis",
		core.AppVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	t := &tools{sessions: sessions, profiles: profiles}
	s.AddTool(chatTool(), t.chat)
	s.AddTool(profileTool(), t.profile)
	s.AddTool(segmentsTool(), t.segments)

	return &Server{mcp: s, in: in, out: out}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving mcp over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}
