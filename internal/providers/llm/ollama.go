package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sandevgo/auralis/internal/core"
)

const (
	ollamaTagsTimeout   = 5 * time.Second
	ollamaContextLength = 32768
)

type Ollama struct {
	*OpenAICompatible
}

func NewOllama(baseURL, apiKey, model string) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}

// Models lists locally pulled models through the native /api/tags endpoint.
func (o *Ollama) Models(ctx context.Context) ([]core.Model, error) {
	ctx, cancel := context.WithTimeout(ctx, ollamaTagsTimeout)
	defer cancel()

	var result struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := o.call(ctx, http.MethodGet, "/api/tags", nil, o.headers(), &result); err != nil {
		return nil, fmt.Errorf("ollama not available: %w", err)
	}

	models := make([]core.Model, 0, len(result.Models))
	for _, m := range result.Models {
		models = append(models, core.Model{ID: m.Name, Name: m.Name, ContextLength: ollamaContextLength})
	}
	return models, nil
}
