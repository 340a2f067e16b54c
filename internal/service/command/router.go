package command

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sandevgo/auralis/internal/core"
)

type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	r := &Router{commands: make(map[string]core.Command, len(commands))}
	for _, cmd := range commands {
		r.Register(cmd)
	}
	return r
}

// Register adds a command after construction, e.g. help which needs the
// router itself.
func (r *Router) Register(cmd core.Command) {
	r.commands[cmd.Name()] = cmd
}

// Execute runs input when it is a slash command. The bool reports whether
// input was handled; plain messages are left to the chat session.
func (r *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	name, args, ok := parse(input)
	if !ok {
		return "", false
	}

	cmd, found := r.commands[name]
	if !found {
		return fmt.Sprintf("Unknown command: /%s. Try /help", name), true
	}

	result, err := cmd.Execute(ctx, sessionID, args)
	if err != nil {
		return NewResponseFormatter().Error(name, err), true
	}
	return result, true
}

// Commands returns the registered commands sorted by name.
func (r *Router) Commands() []core.Command {
	return slices.SortedFunc(maps.Values(r.commands), func(a, b core.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// parse splits "/name@bot arg..." into its command name and arguments.
// Telegram appends the bot name in groups.
func parse(input string) (string, []string, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil, false
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	if name == "" {
		return "", nil, false
	}
	return name, fields[1:], true
}
