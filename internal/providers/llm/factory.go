package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, cfg config.ProviderConfig) (core.AIProvider, error) {
	model := cfg.GetModel()
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.GeminiAPIKey, model)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, model), nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg.AnthropicAPIKey, model), nil
	case config.ProviderOpenRouter:
		return NewOpenRouter(cfg.OpenRouterAPIKey, model), nil
	case config.ProviderOllama:
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, model), nil
	case config.ProviderCustom:
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
