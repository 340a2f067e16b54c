package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/sandevgo/auralis/internal/core"
)

type OpenAICompatible struct {
	baseProvider
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
}

type OpenAICompatibleConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
	ExtraHeaders map[string]string
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
	}
}

type chatCompletion struct {
	Choices []struct {
		Message struct {
			Role             string `json:"role"`
			Content          string `json:"content"`
			Reasoning        string `json:"reasoning"`
			ReasoningContent string `json:"reasoning_content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends the conversation to /v1/chat/completions. When format is set the
// request carries a strict json_schema response_format.
func (o *OpenAICompatible) Chat(ctx context.Context, history []core.Message, format *core.ResponseFormat) (core.Message, error) {
	messages := make([]map[string]string, 0, len(history))
	for _, m := range history {
		messages = append(messages, map[string]string{"role": m.Role, "content": m.Content})
	}

	payload := map[string]any{
		"model":    o.model,
		"messages": messages,
	}
	if format != nil {
		payload["response_format"] = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   format.Name,
				"schema": format.Schema,
				"strict": true,
			},
		}
	}

	var result chatCompletion
	if err := o.call(ctx, http.MethodPost, "/v1/chat/completions", payload, o.headers(), &result); err != nil {
		return core.Message{}, err
	}
	return result.message()
}

func (c chatCompletion) message() (core.Message, error) {
	if len(c.Choices) == 0 {
		return core.Message{}, errors.New("empty choices")
	}

	m := c.Choices[0].Message
	msg := core.Message{Role: m.Role, Content: m.Content, Reasoning: m.Reasoning}
	if msg.Reasoning == "" {
		msg.Reasoning = m.ReasoningContent
	}
	if msg.Role == "" {
		msg.Role = core.RoleAssistant
	}
	return msg, nil
}

// Models lists /v1/models. Providers with a richer listing override it.
func (o *OpenAICompatible) Models(ctx context.Context) ([]core.Model, error) {
	var result struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := o.call(ctx, http.MethodGet, "/v1/models", nil, o.headers(), &result); err != nil {
		return nil, err
	}

	models := make([]core.Model, 0, len(result.Data))
	for _, m := range result.Data {
		models = append(models, core.Model{ID: m.ID, Name: m.ID})
	}
	return models, nil
}

func (o *OpenAICompatible) headers() map[string]string {
	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}
	return headers
}
