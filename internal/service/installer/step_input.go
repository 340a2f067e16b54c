package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/auralis/internal/config"
)

var validate = validator.New()

// InputStep asks for a single value. Steps whose skip func reports true are
// passed over without rendering.
type InputStep struct {
	input textinput.Model
	ready bool
	err   error

	envKey  string
	prompt  func(state *InstallState) string
	prepare func(step *InputStep, state *InstallState)
	skip    func(state *InstallState) bool
	check   func(value string) error

	// fallback is stored when the answer is empty. An empty fallback
	// makes the answer required unless optional is set.
	fallback string
	optional bool
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Width = 50
	ti.Placeholder = placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return ti
}

func staticPrompt(s string) func(*InstallState) string {
	return func(*InstallState) string { return s }
}

func checkURL(v string) error {
	return validate.Var(v, "url")
}

func checkInt(v string) error {
	_, err := strconv.ParseInt(v, 10, 64)
	return err
}

func NewAPIKeyStep() Step {
	return &InputStep{
		prompt: func(state *InstallState) string {
			return fmt.Sprintf("Enter your %s API key:", providerLabel(state.Provider()))
		},
		prepare: func(step *InputStep, state *InstallState) {
			step.envKey = apiKeyEnv(state.Provider())
			step.optional = state.Provider() == config.ProviderOllama || state.Provider() == config.ProviderCustom
			step.input = newInput(apiKeyPlaceholder(state.Provider()), true)
		},
	}
}

func NewBaseURLStep() Step {
	return &InputStep{
		prompt: func(state *InstallState) string {
			return fmt.Sprintf("Enter the %s base URL:", providerLabel(state.Provider()))
		},
		skip: func(state *InstallState) bool {
			p := state.Provider()
			return p != config.ProviderOllama && p != config.ProviderCustom
		},
		prepare: func(step *InputStep, state *InstallState) {
			if state.Provider() == config.ProviderOllama {
				step.envKey = "OLLAMA_BASE_URL"
				step.fallback = "http://localhost:11434"
				step.input = newInput(step.fallback, false)
				return
			}
			step.envKey = "CUSTOM_OPENAI_BASE_URL"
			step.input = newInput("https://api.example.com/v1", false)
		},
		check: checkURL,
	}
}

func NewAuralisURLStep() Step {
	return &InputStep{
		envKey:   "AURALIS_API_BASE_URL",
		prompt:   staticPrompt("Enter the Auralis memory service URL:"),
		input:    newInput(config.DefaultAuralisBaseURL, false),
		fallback: config.DefaultAuralisBaseURL,
		check:    checkURL,
	}
}

func NewTelegramTokenStep() Step {
	return &InputStep{
		envKey: "TELEGRAM_TOKEN",
		prompt: staticPrompt("Enter your Telegram Bot Token:"),
		input:  newInput("123456789:ABCDEF...", true),
		skip:   func(state *InstallState) bool { return !wantsTelegram(state) },
	}
}

func NewTelegramOwnerStep() Step {
	return &InputStep{
		envKey: "TELEGRAM_OWNER_ID",
		prompt: staticPrompt("Enter your Telegram User ID (Owner):"),
		input:  newInput("123456789", false),
		skip:   func(state *InstallState) bool { return !wantsTelegram(state) },
		check:  checkInt,
	}
}

func NewHTTPAddrStep() Step {
	return &InputStep{
		envKey:   "HTTP_ADDR",
		prompt:   staticPrompt("Enter the HTTP API listen address:"),
		input:    newInput(":8080", false),
		fallback: ":8080",
		skip:     func(state *InstallState) bool { return !wantsHTTP(state) },
	}
}

func (s *InputStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.ready {
		if s.skip != nil && s.skip(state) {
			return nil, nil
		}
		if s.prepare != nil {
			s.prepare(s, state)
		}
		s.ready = true
		return s, textinput.Blink
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.fallback
		}
		if val == "" && !s.optional {
			s.err = fmt.Errorf("a value is required")
			return s, cmd
		}
		if val != "" && s.check != nil {
			if err := s.check(val); err != nil {
				s.err = fmt.Errorf("invalid value %q", val)
				return s, cmd
			}
		}
		state.EnvVars[s.envKey] = val
		return nil, nil
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	if !s.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(s.prompt(state))
	if s.optional {
		b.WriteString(" (optional, press enter to skip)")
	}
	b.WriteString("\n\n" + s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}

func providerLabel(provider string) string {
	switch provider {
	case config.ProviderGemini:
		return "Google Gemini"
	case config.ProviderOpenAI:
		return "OpenAI"
	case config.ProviderAnthropic:
		return "Anthropic"
	case config.ProviderOpenRouter:
		return "OpenRouter"
	case config.ProviderOllama:
		return "Ollama"
	default:
		return "custom provider"
	}
}

func apiKeyEnv(provider string) string {
	switch provider {
	case config.ProviderGemini:
		return "GEMINI_API_KEY"
	case config.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case config.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case config.ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	case config.ProviderOllama:
		return "OLLAMA_API_KEY"
	default:
		return "CUSTOM_OPENAI_API_KEY"
	}
}

func apiKeyPlaceholder(provider string) string {
	switch provider {
	case config.ProviderGemini:
		return "AIza..."
	case config.ProviderAnthropic:
		return "sk-ant-..."
	case config.ProviderOpenRouter:
		return "sk-or-v1-..."
	case config.ProviderOpenAI:
		return "sk-..."
	default:
		return ""
	}
}
