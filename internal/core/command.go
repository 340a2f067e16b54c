package core

import "context"

// CmdRouter dispatches slash commands typed into any chat surface. Command
// output is shown locally and never enters the conversation with the model.
type CmdRouter interface {
	// Execute reports false when input is not a slash command.
	Execute(ctx context.Context, sessionID, input string) (string, bool)
	Commands() []Command
}

// Command is a single slash command such as /profile.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
