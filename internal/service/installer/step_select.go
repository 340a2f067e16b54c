package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/auralis/internal/config"
)

type choice struct {
	label string
	value string
}

// SelectStep stores the chosen value under envKey.
type SelectStep struct {
	prompt  string
	envKey  string
	choices []choice
	cursor  int
}

func NewProviderStep() Step {
	return &SelectStep{
		prompt: "Select the model provider:",
		envKey: "LLM_PROVIDER",
		choices: []choice{
			{"Google Gemini", config.ProviderGemini},
			{"OpenAI", config.ProviderOpenAI},
			{"Anthropic", config.ProviderAnthropic},
			{"OpenRouter", config.ProviderOpenRouter},
			{"Ollama", config.ProviderOllama},
			{"Custom OpenAI-compatible", config.ProviderCustom},
		},
	}
}

func NewChannelStep() Step {
	return &SelectStep{
		prompt: "How will you talk to Auralis?",
		envKey: keyChannel,
		choices: []choice{
			{"Terminal only (auralis chat)", channelTerminal},
			{"Telegram bot", channelTelegram},
			{"HTTP API", channelHTTP},
			{"Telegram bot and HTTP API", channelBoth},
		},
	}
}

func (s *SelectStep) Init() tea.Cmd {
	return nil
}

func (s *SelectStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars[s.envKey] = s.choices[s.cursor].value
			return nil, nil
		}
	}
	return s, nil
}

func (s *SelectStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
