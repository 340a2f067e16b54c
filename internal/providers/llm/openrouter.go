package llm

import (
	"context"
	"net/http"

	"github.com/sandevgo/auralis/internal/core"
)

type OpenRouter struct {
	*OpenAICompatible
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return &OpenRouter{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    "https://openrouter.ai/api",
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": core.AppRepositoryURL,
				"X-Title":      core.AppName,
			},
		}),
	}
}

// Models uses OpenRouter's catalogue, which carries names and context sizes.
// Models without structured output support are left out.
func (o *OpenRouter) Models(ctx context.Context) ([]core.Model, error) {
	var result struct {
		Data []struct {
			core.Model
			SupportedParameters []string `json:"supported_parameters"`
		} `json:"data"`
	}
	if err := o.call(ctx, http.MethodGet, "/v1/models", nil, o.headers(), &result); err != nil {
		return nil, err
	}

	models := make([]core.Model, 0, len(result.Data))
	for _, m := range result.Data {
		if len(m.SupportedParameters) > 0 && !contains(m.SupportedParameters, "structured_outputs") {
			continue
		}
		models = append(models, m.Model)
	}
	return models, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
