package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	channelTerminal = "terminal"
	channelTelegram = "telegram"
	channelHTTP     = "http"
	channelBoth     = "telegram+http"
)

func wantsTelegram(state *InstallState) bool {
	c := state.EnvVars[keyChannel]
	return c == channelTelegram || c == channelBoth
}

func wantsHTTP(state *InstallState) bool {
	c := state.EnvVars[keyChannel]
	return c == channelHTTP || c == channelBoth
}

// FinalizationStep derives the enable flags from the chosen channel.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	state.EnvVars["ENABLE_TELEGRAM"] = boolEnv(wantsTelegram(state))
	state.EnvVars["ENABLE_HTTP"] = boolEnv(wantsHTTP(state))

	if state.EnvVars["AURALIS_DEBUG"] == "" {
		state.EnvVars["AURALIS_DEBUG"] = "0"
	}

	// Signal completion
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func boolEnv(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
