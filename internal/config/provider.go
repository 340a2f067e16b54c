package config

import "fmt"

const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderCustom     = "custom"
)

var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderAnthropic:  "claude-3-5-haiku-latest",
	ProviderOpenRouter: "google/gemini-2.5-flash",
	ProviderOllama:     "llama3.1",
}

type ProviderConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini" validate:"oneof=gemini openai anthropic openrouter ollama custom"`
	Model    string `env:"LLM_MODEL"`

	GeminiAPIKey     string `env:"GEMINI_API_KEY" secret:"true"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY" secret:"true"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY" secret:"true"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY" secret:"true"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434" validate:"omitempty,url"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY" secret:"true"`

	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL" validate:"omitempty,url"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY" secret:"true"`
}

// GetModel returns the configured model or the provider's default.
func (p ProviderConfig) GetModel() string {
	if p.Model != "" {
		return p.Model
	}
	return defaultModels[p.Provider]
}

// APIKey returns the key belonging to the active provider.
func (p ProviderConfig) APIKey() string {
	switch p.Provider {
	case ProviderGemini:
		return p.GeminiAPIKey
	case ProviderOpenAI:
		return p.OpenAIAPIKey
	case ProviderAnthropic:
		return p.AnthropicAPIKey
	case ProviderOpenRouter:
		return p.OpenRouterAPIKey
	case ProviderOllama:
		return p.OllamaAPIKey
	case ProviderCustom:
		return p.CustomOpenAIAPIKey
	}
	return ""
}

func (p ProviderConfig) validate() error {
	switch p.Provider {
	case ProviderOllama:
		if p.OllamaBaseURL == "" {
			return fmt.Errorf("OLLAMA_BASE_URL is required for provider %q", p.Provider)
		}
	case ProviderCustom:
		if p.CustomOpenAIBaseURL == "" {
			return fmt.Errorf("CUSTOM_OPENAI_BASE_URL is required for provider %q", p.Provider)
		}
		if p.Model == "" {
			return fmt.Errorf("LLM_MODEL is required for provider %q", p.Provider)
		}
	default:
		if p.APIKey() == "" {
			return fmt.Errorf("api key is required for provider %q", p.Provider)
		}
	}
	return nil
}
