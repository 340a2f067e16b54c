package command

import (
	"context"

	"github.com/sandevgo/auralis/internal/service/profile"
)

type ProfileCommand struct {
	profiles *profile.Service
}

func NewProfileCommand(profiles *profile.Service) *ProfileCommand {
	return &ProfileCommand{profiles: profiles}
}

func (c *ProfileCommand) Name() string {
	return "profile"
}

func (c *ProfileCommand) Description() string {
	return "Show identity, values, recent memories, self concept and ideas"
}

// Execute shows whatever loaded; partial failures are appended as a note.
func (c *ProfileCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	p, err := c.profiles.Load(ctx)
	out := FormatProfile(p)
	if err != nil {
		out += "\n⚠️ Algumas informações podem estar faltando.\n"
	}
	return out, nil
}

type MemoriesCommand struct {
	profiles *profile.Service
}

func NewMemoriesCommand(profiles *profile.Service) *MemoriesCommand {
	return &MemoriesCommand{profiles: profiles}
}

func (c *MemoriesCommand) Name() string {
	return "memories"
}

func (c *MemoriesCommand) Description() string {
	return "Show memory segments by horizon"
}

func (c *MemoriesCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	s, err := c.profiles.Segments(ctx)
	if err != nil {
		return "", err
	}
	return FormatSegments(s), nil
}
